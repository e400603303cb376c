// Package validate implements declarative validation of request fields.
//
// A Schema is an ordered list of Field entries, each declaring the expected
// type of one request field, whether it is required, and any number of custom
// rules layered on top of the built-in checks. Validate walks the schema in
// declaration order and produces a Result that aggregates every failure; it
// never stops early, so a single run reports all problems at once and a single
// field collects all of its messages in one entry.
//
// Fields are read from one of three request origins: the query string, the
// JSON body, or the route parameters. The origin matters for type checks:
// query and params values are always string-encoded, so a `bool` field there
// must be the literal "true" or "false", while in the body it must be a native
// boolean.
//
// # Usage
//
//	schema := validate.Schema{
//		{Name: "email", Type: validate.TypeString, Required: true, Rules: []validate.Rule{
//			validate.Matches(emailRegex),
//		}},
//		{Name: "age", Type: validate.TypeInt},
//	}
//
//	r.With(validate.Middleware(validate.OriginBody, schema)).Post("/signup", signupHandler)
//
// The middleware responds with 422 Unprocessable Entity and the Result encoded
// as JSON when validation fails, and passes the request through untouched when
// it succeeds.
//
// # Error boundaries
//
// Built-in checks (required, type) and failing rules are always captured as
// field errors. An error returned by a rule's Check or MessageFunc is not a
// validation failure: it propagates to the caller unwrapped, because rule
// authors own their own error handling. The middleware converts such errors
// into a 500 response.
package validate
