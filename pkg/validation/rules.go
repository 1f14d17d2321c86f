package validation

import "strconv"

// Rule is one field constraint of a form. The same table drives the server validator messages,
// the Go client and the data attributes the browser script validates against.
type Rule struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

// MinLength returns the rune count a "min" rule requires, or 0 for other tags.
func (r Rule) MinLength() int {
	if r.Tag != "min" {
		return 0
	}
	n, _ := strconv.Atoi(r.Param)
	return n
}

// TagString renders the rule as a validator tag, e.g. "min=2".
func (r Rule) TagString() string {
	if r.Param == "" {
		return r.Tag
	}
	return r.Tag + "=" + r.Param
}

// ContactRules lists the contact form rules in the order fields are checked.
var ContactRules = []Rule{
	{Field: "name", Tag: "min", Param: "2", Message: "Name must be at least 2 characters"},
	{Field: "email", Tag: "email", Message: "Invalid email address"},
	{Field: "message", Tag: "min", Param: "10", Message: "Message must be at least 10 characters"},
}
