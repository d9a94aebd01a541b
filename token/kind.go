// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import "fmt"

// Kind identifies what kind of token a particular [Token] is.
//
// The set is closed: every token a C11 tokenizer can produce is one of
// these, including the [Unknown] and [EOF] sentinels.
type Kind byte

const (
	Unknown Kind = iota // Unrecognized garbage in the input file.
	EOF                 // End-of-input sentinel produced by the stream.

	Identifier
	NumericConstant

	Utf8CharConstant
	Utf16CharConstant
	Utf32CharConstant
	WideCharConstant

	StringLiteral
	Utf8StringLiteral
	Utf16StringLiteral
	Utf32StringLiteral
	WideStringLiteral

	// Keywords, in the order of C11 6.4.1.
	KwAuto
	KwBreak
	KwCase
	KwChar
	KwConst
	KwContinue
	KwDefault
	KwDo
	KwDouble
	KwElse
	KwEnum
	KwExtern
	KwFloat
	KwFor
	KwGoto
	KwIf
	KwInline
	KwInt
	KwLong
	KwRegister
	KwRestrict
	KwReturn
	KwShort
	KwSigned
	KwSizeof
	KwStatic
	KwStruct
	KwSwitch
	KwTypedef
	KwUnion
	KwUnsigned
	KwVoid
	KwVolatile
	KwWhile
	KwAlignas
	KwAlignof
	KwAtomic
	KwBool
	KwComplex
	KwGeneric
	KwImaginary
	KwNoreturn
	KwStaticAssert
	KwThreadLocal

	// Punctuators. Digraph spellings lex to the same kinds as their
	// primary forms.
	LBracket
	RBracket
	LParen
	RParen
	LBrace
	RBrace
	Period
	Arrow
	PlusPlus
	MinusMinus
	Amp
	Star
	Plus
	Minus
	Tilde
	Exclaim
	Slash
	Percent
	LessLess
	GreaterGreater
	Less
	Greater
	LessEqual
	GreaterEqual
	EqualEqual
	ExclaimEqual
	Caret
	Pipe
	AmpAmp
	PipePipe
	Question
	Colon
	Semi
	Ellipsis
	Equal
	StarEqual
	SlashEqual
	PercentEqual
	PlusEqual
	MinusEqual
	LessLessEqual
	GreaterGreaterEqual
	AmpEqual
	CaretEqual
	PipeEqual
	Comma
	Hash
	HashHash
)

var kindNames = map[Kind]string{
	Unknown:         "<unknown>",
	EOF:             "<end of input>",
	Identifier:      "identifier",
	NumericConstant: "numeric constant",

	Utf8CharConstant:  "character constant",
	Utf16CharConstant: "char16_t character constant",
	Utf32CharConstant: "char32_t character constant",
	WideCharConstant:  "wide character constant",

	StringLiteral:      "string literal",
	Utf8StringLiteral:  "utf-8 string literal",
	Utf16StringLiteral: "char16_t string literal",
	Utf32StringLiteral: "char32_t string literal",
	WideStringLiteral:  "wide string literal",

	KwAuto:         "auto",
	KwBreak:        "break",
	KwCase:         "case",
	KwChar:         "char",
	KwConst:        "const",
	KwContinue:     "continue",
	KwDefault:      "default",
	KwDo:           "do",
	KwDouble:       "double",
	KwElse:         "else",
	KwEnum:         "enum",
	KwExtern:       "extern",
	KwFloat:        "float",
	KwFor:          "for",
	KwGoto:         "goto",
	KwIf:           "if",
	KwInline:       "inline",
	KwInt:          "int",
	KwLong:         "long",
	KwRegister:     "register",
	KwRestrict:     "restrict",
	KwReturn:       "return",
	KwShort:        "short",
	KwSigned:       "signed",
	KwSizeof:       "sizeof",
	KwStatic:       "static",
	KwStruct:       "struct",
	KwSwitch:       "switch",
	KwTypedef:      "typedef",
	KwUnion:        "union",
	KwUnsigned:     "unsigned",
	KwVoid:         "void",
	KwVolatile:     "volatile",
	KwWhile:        "while",
	KwAlignas:      "_Alignas",
	KwAlignof:      "_Alignof",
	KwAtomic:       "_Atomic",
	KwBool:         "_Bool",
	KwComplex:      "_Complex",
	KwGeneric:      "_Generic",
	KwImaginary:    "_Imaginary",
	KwNoreturn:     "_Noreturn",
	KwStaticAssert: "_Static_assert",
	KwThreadLocal:  "_Thread_local",

	LBracket:            "[",
	RBracket:            "]",
	LParen:              "(",
	RParen:              ")",
	LBrace:              "{",
	RBrace:              "}",
	Period:              ".",
	Arrow:               "->",
	PlusPlus:            "++",
	MinusMinus:          "--",
	Amp:                 "&",
	Star:                "*",
	Plus:                "+",
	Minus:               "-",
	Tilde:               "~",
	Exclaim:             "!",
	Slash:               "/",
	Percent:             "%",
	LessLess:            "<<",
	GreaterGreater:      ">>",
	Less:                "<",
	Greater:             ">",
	LessEqual:           "<=",
	GreaterEqual:        ">=",
	EqualEqual:          "==",
	ExclaimEqual:        "!=",
	Caret:               "^",
	Pipe:                "|",
	AmpAmp:              "&&",
	PipePipe:            "||",
	Question:            "?",
	Colon:               ":",
	Semi:                ";",
	Ellipsis:            "...",
	Equal:               "=",
	StarEqual:           "*=",
	SlashEqual:          "/=",
	PercentEqual:        "%=",
	PlusEqual:           "+=",
	MinusEqual:          "-=",
	LessLessEqual:       "<<=",
	GreaterGreaterEqual: ">>=",
	AmpEqual:            "&=",
	CaretEqual:          "^=",
	PipeEqual:           "|=",
	Comma:               ",",
	Hash:                "#",
	HashHash:            "##",
}

// keywords maps each keyword spelling back to its kind. Built once at
// init from kindNames so the two can never drift apart.
var keywords = func() map[string]Kind {
	m := make(map[string]Kind, KwThreadLocal-KwAuto+1)
	for k := KwAuto; k <= KwThreadLocal; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

// Lookup maps an identifier spelling to its keyword kind, if it is one.
//
// Callers are expected to skip the lookup for identifiers whose spelling
// is not their logical content (dirty or UCN-bearing tokens).
func Lookup(spelling string) (Kind, bool) {
	k, ok := keywords[spelling]
	return k, ok
}

// String returns the canonical printed form of this kind: the keyword or
// punctuator spelling, or a prose description for the variable-spelling
// kinds.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("token.Kind(%d)", byte(k))
}

// IsKeyword returns whether this kind is one of the 44 C11 keywords.
func (k Kind) IsKeyword() bool {
	return k >= KwAuto && k <= KwThreadLocal
}

// IsCharConstant returns whether this kind is a character constant of any
// encoding.
func (k Kind) IsCharConstant() bool {
	return k >= Utf8CharConstant && k <= WideCharConstant
}

// IsStringLiteral returns whether this kind is a string literal of any
// encoding.
func (k Kind) IsStringLiteral() bool {
	return k >= StringLiteral && k <= WideStringLiteral
}

// IsLiteral returns whether this kind is a numeric, character, or string
// literal.
func (k Kind) IsLiteral() bool {
	return k == NumericConstant || k.IsCharConstant() || k.IsStringLiteral()
}
