package grammar

import "github.com/ghettovoice/abnf"

// RFC 7230, section 3.2.6:
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	        "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
//	token = 1*tchar
var tchar = abnf.Alt(
	"tchar",
	abnf.Range("ALPHA", []byte("a"), []byte("z")),
	abnf.Range("ALPHA", []byte("A"), []byte("Z")),
	abnf.Range("DIGIT", []byte("0"), []byte("9")),
	abnf.Literal(`"!"`, []byte("!")),
	abnf.Literal(`"#"`, []byte("#")),
	abnf.Literal(`"$"`, []byte("$")),
	abnf.Literal(`"%"`, []byte("%")),
	abnf.Literal(`"&"`, []byte("&")),
	abnf.Literal(`"'"`, []byte("'")),
	abnf.Literal(`"*"`, []byte("*")),
	abnf.Literal(`"+"`, []byte("+")),
	abnf.Literal(`"-"`, []byte("-")),
	abnf.Literal(`"."`, []byte(".")),
	abnf.Literal(`"^"`, []byte("^")),
	abnf.Literal(`"_"`, []byte("_")),
	abnf.Literal("\"`\"", []byte("`")),
	abnf.Literal(`"|"`, []byte("|")),
	abnf.Literal(`"~"`, []byte("~")),
)

var token = abnf.Repeat1Inf("token", tchar)

// Field value octets, the obs-text range included:
//
//	field-value = *( SP / HTAB / VCHAR / obs-text )
//	VCHAR       = %x21-7E
//	obs-text    = %x80-FF
var fieldValue = abnf.Repeat0Inf(
	"field-value",
	abnf.Alt(
		"field-vchar",
		abnf.Literal("SP", []byte{0x20}),
		abnf.Literal("HTAB", []byte{0x09}),
		abnf.Range("VCHAR", []byte{0x21}, []byte{0x7E}),
		abnf.Range("obs-text", []byte{0x80}, []byte{0xFF}),
	),
)

func Token(s []byte, ns *abnf.Nodes) error {
	return token(s, 0, ns) //errtrace:skip
}

func FieldValue(s []byte, ns *abnf.Nodes) error {
	return fieldValue(s, 0, ns) //errtrace:skip
}
