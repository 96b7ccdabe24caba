package model

// FieldLabel renders a column name as its form label: the first ASCII letter
// upper-cased, with a ":" suffix.
func FieldLabel(name string) string {
	label := name + ":"
	if c := label[0]; c >= 'a' && c <= 'z' {
		label = string(c-'a'+'A') + label[1:]
	}
	return label
}
