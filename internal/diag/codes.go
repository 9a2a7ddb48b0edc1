package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Schema construction (1000-1999)
	SchemaInfo           Code = 1000
	SchemaMalformedField Code = 1001
	SchemaEmptyName      Code = 1002

	// Validation (2000-2999)
	ValInfo             Code = 2000
	ValDuplicateSymbol  Code = 2001
	ValDuplicateEventID Code = 2002
	ValMalformedField   Code = 2003
	ValMissingDocs      Code = 2004

	// Linkage (3000-3999)
	LinkInfo            Code = 3000
	LinkDuplicateSymbol Code = 3001
	LinkBadSymbol       Code = 3002
	LinkSymbolRemoved   Code = 3003
	LinkSymbolRetarget  Code = 3004

	// Generation (4000-4999)
	GenInfo        Code = 4000
	GenExportError Code = 4001
	GenDocsError   Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	SchemaInfo:           "schema info",
	SchemaMalformedField: "malformed field",
	SchemaEmptyName:      "empty item name",

	ValInfo:             "validation info",
	ValDuplicateSymbol:  "duplicate linkage symbol",
	ValDuplicateEventID: "duplicate event discriminant",
	ValMalformedField:   "malformed field",
	ValMissingDocs:      "missing documentation",

	LinkInfo:            "linkage info",
	LinkDuplicateSymbol: "duplicate linkage symbol",
	LinkBadSymbol:       "bad linkage symbol format",
	LinkSymbolRemoved:   "linkage symbol removed",
	LinkSymbolRetarget:  "linkage symbol retargeted",

	GenInfo:        "generation info",
	GenExportError: "export failed",
	GenDocsError:   "documentation rendering failed",
}

// ID renders a stable short identifier, partitioned by concern.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("SCH%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("LNK%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("GEN%04d", ic)
	default:
		return fmt.Sprintf("TET%04d", ic)
	}
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
