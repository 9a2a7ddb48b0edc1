package diag

// Note attaches secondary context to a diagnostic, usually the other half of
// a conflict (the first occurrence of a duplicated symbol, for example).
type Note struct {
	Path string
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	// Path is the dotted path of the offending item, rooted at the schema
	// root module.
	Path  string
	Notes []Note
}
