package notify_test

import (
	"bytes"
	"testing"

	"pulljira/internal/notify"

	"github.com/stretchr/testify/assert"
)

func TestWriterNotifier_AddError(t *testing.T) {
	var buf bytes.Buffer
	n := notify.NewWriterNotifier(&buf)

	n.AddError("token is not set", notify.Options{Dismissable: true})
	n.AddError("org_name is not set", notify.Options{})

	assert.Equal(t, "error: token is not set\nerror: org_name is not set\n", buf.String())
}
