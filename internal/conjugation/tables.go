package conjugation

import (
	"strings"
	"unicode/utf8"

	"github.com/kotaroooo0/gojaconv/jaconv"
)

// godanExceptions end in る after an i or e vowel but conjugate as godan verbs
var godanExceptions = map[string]struct{}{
	"切る": {}, // to cut
	"走る": {}, // to run
	"入る": {}, // to enter
	"要る": {}, // to need
	"知る": {}, // to know
	"帰る": {}, // to return
	"減る": {}, // to decrease
	"滑る": {}, // to slip
	"握る": {}, // to grip

	// Kana spellings that don't collide with an ichidan verb
	"はしる": {},
	"はいる": {},
	"しる":  {},
	"へる":  {},
	"すべる": {},
	"にぎる": {},
}

var vowels = func() map[rune]rune {
	columns := map[rune]string{
		'a': "あかがさざただなはばぱまやらわぁゃゎ",
		'i': "いきぎしじちぢにひびぴみりぃゐ",
		'u': "うくぐすずつづぬふぶぷむゆるぅゅゔ",
		'e': "えけげせぜてでねへべぺめれぇゑ",
		'o': "おこごそぞとどのほぼぽもよろをぉょ",
	}
	table := make(map[rune]rune)
	for vowel, kana := range columns {
		for _, r := range kana {
			table[r] = vowel
		}
	}
	return table
}()

// vowelOf returns the vowel column of a kana. Katakana is folded to hiragana first.
func vowelOf(r rune) (rune, bool) {
	folded, _ := utf8.DecodeRuneInString(jaconv.KatakanaToHiragana(string(r)))
	vowel, ok := vowels[folded]
	return vowel, ok
}

// godanTables maps a godan stem ending to its replacement for each form.
// The ta and te entries carry the euphonic change, so nothing is appended to them.
var godanTables = map[Form]map[rune]string{
	FormPoliteNonPast: {
		'う': "い", 'く': "き", 'ぐ': "ぎ", 'す': "し", 'つ': "ち",
		'ぬ': "に", 'ぶ': "び", 'む': "み", 'る': "り",
	},
	FormNegativePlain: {
		'う': "わ", 'く': "か", 'ぐ': "が", 'す': "さ", 'つ': "た",
		'ぬ': "な", 'ぶ': "ば", 'む': "ま", 'る': "ら",
	},
	FormPastPlain: {
		'う': "った", 'く': "いた", 'ぐ': "いだ", 'す': "した", 'つ': "った",
		'ぬ': "んだ", 'ぶ': "んだ", 'む': "んだ", 'る': "った",
	},
	FormTe: {
		'う': "って", 'く': "いて", 'ぐ': "いで", 'す': "して", 'つ': "って",
		'ぬ': "んで", 'ぶ': "んで", 'む': "んで", 'る': "って",
	},
}

var godanTrailers = map[Form]string{
	FormPoliteNonPast: "ます",
	FormNegativePlain: "ない",
}

// 行く keeps a geminate in the past and te forms instead of the usual く change
var ikuEndings = map[Form]string{
	FormPastPlain: "った",
	FormTe:        "って",
}

func isIku(verb string) bool {
	return verb == "いく" || strings.HasSuffix(verb, "行く")
}

var ichidanSuffixes = map[Form]string{
	FormPoliteNonPast: "ます",
	FormNegativePlain: "ない",
	FormPastPlain:     "た",
	FormTe:            "て",
}

const suruStem = "し"

var suruSuffixes = map[Form]string{
	FormPoliteNonPast: "ます",
	FormNegativePlain: "ない",
	FormPastPlain:     "た",
	FormTe:            "て",
}

// kuruForms are written in kana only, including for 来る
var kuruForms = map[Form]string{
	FormPoliteNonPast: "きます",
	FormNegativePlain: "こない",
	FormPastPlain:     "きた",
	FormTe:            "きて",
}
