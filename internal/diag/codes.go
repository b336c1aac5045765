package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004

	// Syntax
	SynInfo                    Code = 2000
	SynUnexpectedToken         Code = 2001
	SynMissingToken            Code = 2002
	SynIndexMustBeIntegerValue Code = 2003
	SynUnknownDirective        Code = 2004
	SynEmptyValue              Code = 2005

	// Semantic checks that are cheap enough to run during parsing
	SemInfo           Code = 3000
	SemInvalidCulture Code = 3001

	// IO and configuration
	IOLoadFileError Code = 4001
	IOConfigError   Code = 4002

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                "Unknown error",
	LexInfo:                    "Lexical information",
	LexUnknownChar:             "Unknown character",
	LexUnterminatedString:      "Unterminated string",
	LexUnterminatedComment:     "Unterminated block comment",
	LexBadNumber:               "Malformed number",
	SynInfo:                    "Syntax information",
	SynUnexpectedToken:         "Unexpected token",
	SynMissingToken:            "Missing token",
	SynIndexMustBeIntegerValue: "Index must be an integer value",
	SynUnknownDirective:        "Unknown directive",
	SynEmptyValue:              "Empty value",
	SemInfo:                    "Semantic information",
	SemInvalidCulture:          "Invalid culture",
	IOLoadFileError:            "I/O load file error",
	IOConfigError:              "Configuration error",
	ObsInfo:                    "Observability information",
	ObsTimings:                 "Pipeline timings",
}

// codeRanges maps each thousand block to the phase prefix of its IDs.
var codeRanges = [...]string{1: "LEX", 2: "SYN", 3: "SEM", 4: "IO", 6: "OBS"}

// ID is the stable textual identifier, for example SYN2002. Codes outside
// the known blocks map to E0000.
func (c Code) ID() string {
	block := int(c) / 1000
	if block >= len(codeRanges) || codeRanges[block] == "" {
		return "E0000"
	}
	return fmt.Sprintf("%s%04d", codeRanges[block], int(c))
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string { return "[" + c.ID() + "]: " + c.Title() }
