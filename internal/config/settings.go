package config

import (
	"fmt"

	"pulljira/internal/errors"
	"pulljira/internal/notify"
)

// Namespace prefixes every pull setting key.
const Namespace = "pull-jira-tasks"

// Setting field names, in resolution order.
const (
	FieldToken        = "token"
	FieldQuery        = "jql_query"
	FieldOrganization = "org_name"
)

// Declaration describes a setting for display. All settings are free-form
// strings without defaults.
type Declaration struct {
	Field       string
	Title       string
	Description string
	Type        string
}

// Key returns the namespaced store key of the setting.
func (d Declaration) Key() string {
	return Key(d.Field)
}

// Key returns the namespaced store key for field.
func Key(field string) string {
	return Namespace + "." + field
}

// Declarations lists the pull settings in resolution order.
var Declarations = []Declaration{
	{
		Field: FieldToken,
		Title: "JIRA API Token",
		Description: "Create a token at https://id.atlassian.com/manage-profile/security/api-tokens, " +
			"then base64 encode it: echo -n \"your-email@example.com:your-api-token\" | base64",
		Type: "string",
	},
	{
		Field: FieldQuery,
		Title: "JQL Query",
		Description: "Build a query at https://{your org}.atlassian.net/issues/ and paste " +
			"the jql request parameter that was added to the URL.",
		Type: "string",
	},
	{
		Field:       FieldOrganization,
		Title:       "Organization Name",
		Description: "Organization Name",
		Type:        "string",
	},
}

// Lookup returns the declaration for field.
func Lookup(field string) (Declaration, bool) {
	for _, d := range Declarations {
		if d.Field == field {
			return d, true
		}
	}
	return Declaration{}, false
}

// Settings holds the values a pull needs.
type Settings struct {
	// Token is the pre-encoded Basic credential.
	Token string
	// Query is the JQL expression, passed to the tracker verbatim.
	Query string
	// Organization is the Atlassian site subdomain.
	Organization string
}

// Resolve reads every declared setting from store. The first absent setting
// is reported through n and returned as a MissingConfigurationError; nothing
// else is read after it.
func Resolve(store Store, n notify.Notifier) (Settings, error) {
	values := make(map[string]string, len(Declarations))
	for _, d := range Declarations {
		v, ok := store.Get(d.Key())
		if !ok {
			n.AddError(
				fmt.Sprintf("%s is not set. please set %s: %s config set %s <value>", d.Field, d.Field, AppName, d.Field),
				notify.Options{Dismissable: true},
			)
			return Settings{}, errors.NewMissingConfigurationError(d.Field)
		}
		values[d.Field] = v
	}
	return Settings{
		Token:        values[FieldToken],
		Query:        values[FieldQuery],
		Organization: values[FieldOrganization],
	}, nil
}
