package schema

import "strings"

// initialisms are kept fully upper-cased in Go identifiers.
var initialisms = map[string]bool{
	"id":   true,
	"ip":   true,
	"imsi": true,
	"imei": true,
	"mtu":  true,
	"pin":  true,
	"sim":  true,
	"sms":  true,
	"ussd": true,
	"uuid": true,
	"url":  true,
}

// GoName converts a schema name such as "telephone-numbers" or "ready_state"
// into an exported Go identifier ("TelephoneNumbers", "ReadyState").
func GoName(name string) string {
	return goIdent(name, true)
}

// LowerGoName is GoName with the first word lower-cased.
func LowerGoName(name string) string {
	return goIdent(name, false)
}

func goIdent(name string, exported bool) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})

	var b strings.Builder
	for i, p := range parts {
		lower := strings.ToLower(p)
		switch {
		case i == 0 && !exported:
			b.WriteString(lower)
		case initialisms[lower]:
			b.WriteString(strings.ToUpper(lower))
		default:
			b.WriteString(strings.ToUpper(p[:1]))
			b.WriteString(p[1:])
		}
	}
	return b.String()
}
