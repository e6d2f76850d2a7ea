// Package locale translates the few strings the game shows to players.
package locale

import (
	_ "embed"

	"github.com/leonelquinteros/gotext"
)

//go:embed es.po
var spanishCatalog []byte

type Language int

const (
	English Language = iota
	Spanish
)

var Languages = []Language{English, Spanish}

func (l Language) String() string {
	switch l {
	case Spanish:
		return "Español"
	default:
		return "English"
	}
}

// Translator looks up msgids. English has no catalog and returns them as is.
type Translator struct {
	po *gotext.Po
}

func New(lang Language) *Translator {
	po := gotext.NewPo()
	if lang == Spanish {
		po.Parse(spanishCatalog)
	}
	return &Translator{po: po}
}

func (t *Translator) Get(msgid string, vars ...interface{}) string {
	return t.po.Get(msgid, vars...)
}
