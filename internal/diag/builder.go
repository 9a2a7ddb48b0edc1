package diag

func New(sev Severity, code Code, path string, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Path:     path,
		Message:  msg,
		Notes:    nil,
	}
}

func NewError(code Code, path string, msg string) Diagnostic {
	return New(SevError, code, path, msg)
}

func NewWarning(code Code, path string, msg string) Diagnostic {
	return New(SevWarning, code, path, msg)
}

func (d Diagnostic) WithNote(path string, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Path: path, Msg: msg})
	return d
}
