package localeid

import "strings"

// crosswalkRow pairs a Gettext modifier name with a Unicode script
// code.
type crosswalkRow struct {
	modifier string
	script   string
}

// crosswalk maps Gettext modifier names to Unicode script codes, one
// row per ISO 15924 code, ordered by code. The table is fixed at
// process start and never mutated.
//
// Several modifier names recur with different codes (georgian is both
// Geok and Geor, syriac covers Syrc/Syre/Syrj/Syrn, cyrillic covers
// Cyrl/Cyrs). Lookups scan in table order and stop at the first match,
// so the row order is load-bearing: keep it sorted by script code and
// do not replace the slice with a map.
var crosswalk = []crosswalkRow{
	{"adlam", "Adlm"},
	{"afaka", "Afak"},
	{"caucasianalbanian", "Aghb"},
	{"ahom", "Ahom"},
	{"arabic", "Arab"},
	{"nastaliq", "Aran"},
	{"imperialaramaic", "Armi"},
	{"armenian", "Armn"},
	{"avestan", "Avst"},
	{"balinese", "Bali"},
	{"bamum", "Bamu"},
	{"bassavah", "Bass"},
	{"batak", "Batk"},
	{"bengali", "Beng"},
	{"bhaiksuki", "Bhks"},
	{"bopomofo", "Bopo"},
	{"brahmi", "Brah"},
	{"braille", "Brai"},
	{"buginese", "Bugi"},
	{"buhid", "Buhd"},
	{"chakma", "Cakm"},
	{"canadianaboriginal", "Cans"},
	{"carian", "Cari"},
	{"cham", "Cham"},
	{"cherokee", "Cher"},
	{"chorasmian", "Chrs"},
	{"coptic", "Copt"},
	{"cyprominoan", "Cpmn"},
	{"cypriot", "Cprt"},
	{"cyrillic", "Cyrl"},
	{"cyrillic", "Cyrs"},
	{"devanagari", "Deva"},
	{"divesakuru", "Diak"},
	{"dogra", "Dogr"},
	{"deseret", "Dsrt"},
	{"duployan", "Dupl"},
	{"egyptiandemotic", "Egyd"},
	{"egyptianhieratic", "Egyh"},
	{"egyptianhieroglyphs", "Egyp"},
	{"elbasan", "Elba"},
	{"elymaic", "Elym"},
	{"ethiopic", "Ethi"},
	{"georgian", "Geok"},
	{"georgian", "Geor"},
	{"glagolitic", "Glag"},
	{"gunjalagondi", "Gong"},
	{"masaramgondi", "Gonm"},
	{"gothic", "Goth"},
	{"grantha", "Gran"},
	{"greek", "Grek"},
	{"gujarati", "Gujr"},
	{"gurmukhi", "Guru"},
	{"hangul", "Hang"},
	{"han", "Hani"},
	{"hanunoo", "Hano"},
	{"simplifiedhan", "Hans"},
	{"traditionalhan", "Hant"},
	{"hatran", "Hatr"},
	{"hebrew", "Hebr"},
	{"hiragana", "Hira"},
	{"anatolianhieroglyphs", "Hluw"},
	{"pahawhhmong", "Hmng"},
	{"nyiakengpuachuehmong", "Hmnp"},
	{"oldhungarian", "Hung"},
	{"olditalic", "Ital"},
	{"javanese", "Java"},
	{"japanese", "Jpan"},
	{"kayahli", "Kali"},
	{"katakana", "Kana"},
	{"kawi", "Kawi"},
	{"kharoshthi", "Khar"},
	{"khmer", "Khmr"},
	{"khojki", "Khoj"},
	{"khitansmallscript", "Kits"},
	{"kannada", "Knda"},
	{"korean", "Kore"},
	{"kaithi", "Kthi"},
	{"taitham", "Lana"},
	{"lao", "Laoo"},
	{"latinfraktur", "Latf"},
	{"latingaelic", "Latg"},
	{"latin", "Latn"},
	{"lepcha", "Lepc"},
	{"limbu", "Limb"},
	{"lineara", "Lina"},
	{"linearb", "Linb"},
	{"lisu", "Lisu"},
	{"lycian", "Lyci"},
	{"lydian", "Lydi"},
	{"mahajani", "Mahj"},
	{"makasar", "Maka"},
	{"mandaic", "Mand"},
	{"manichaean", "Mani"},
	{"marchen", "Marc"},
	{"medefaidrin", "Medf"},
	{"mendekikakui", "Mend"},
	{"meroiticcursive", "Merc"},
	{"meroitic", "Mero"},
	{"malayalam", "Mlym"},
	{"modi", "Modi"},
	{"mongolian", "Mong"},
	{"mro", "Mroo"},
	{"meeteimayek", "Mtei"},
	{"multani", "Mult"},
	{"myanmar", "Mymr"},
	{"nandinagari", "Nand"},
	{"oldnortharabian", "Narb"},
	{"nabataean", "Nbat"},
	{"newa", "Newa"},
	{"nko", "Nkoo"},
	{"nushu", "Nshu"},
	{"ogham", "Ogam"},
	{"olchiki", "Olck"},
	{"orkhon", "Orkh"},
	{"oriya", "Orya"},
	{"osage", "Osge"},
	{"osmanya", "Osma"},
	{"olduyghur", "Ougr"},
	{"palmyrene", "Palm"},
	{"paucinhau", "Pauc"},
	{"oldpermic", "Perm"},
	{"phagspa", "Phag"},
	{"inscriptionalpahlavi", "Phli"},
	{"psalterpahlavi", "Phlp"},
	{"phoenician", "Phnx"},
	{"pollard", "Plrd"},
	{"inscriptionalparthian", "Prti"},
	{"rejang", "Rjng"},
	{"hanifirohingya", "Rohg"},
	{"runic", "Runr"},
	{"samaritan", "Samr"},
	{"oldsoutharabian", "Sarb"},
	{"saurashtra", "Saur"},
	{"signwriting", "Sgnw"},
	{"shavian", "Shaw"},
	{"sharada", "Shrd"},
	{"siddham", "Sidd"},
	{"khudawadi", "Sind"},
	{"sinhala", "Sinh"},
	{"sogdian", "Sogd"},
	{"oldsogdian", "Sogo"},
	{"sorasompeng", "Sora"},
	{"soyombo", "Soyo"},
	{"sundanese", "Sund"},
	{"sylotinagri", "Sylo"},
	{"syriac", "Syrc"},
	{"syriac", "Syre"},
	{"syriac", "Syrj"},
	{"syriac", "Syrn"},
	{"tagbanwa", "Tagb"},
	{"takri", "Takr"},
	{"taile", "Tale"},
	{"newtailue", "Talu"},
	{"tamil", "Taml"},
	{"tangut", "Tang"},
	{"taiviet", "Tavt"},
	{"telugu", "Telu"},
	{"tifinagh", "Tfng"},
	{"tagalog", "Tglg"},
	{"thaana", "Thaa"},
	{"thai", "Thai"},
	{"tibetan", "Tibt"},
	{"tirhuta", "Tirh"},
	{"tangsa", "Tnsa"},
	{"toto", "Toto"},
	{"ugaritic", "Ugar"},
	{"vai", "Vaii"},
	{"vithkuqi", "Vith"},
	{"warangciti", "Wara"},
	{"wancho", "Wcho"},
	{"oldpersian", "Xpeo"},
	{"cuneiform", "Xsux"},
	{"yezidi", "Yezi"},
	{"yi", "Yiii"},
	{"zanabazarsquare", "Zanb"},
}

// ModifierToScript returns the Unicode script code for a Gettext
// modifier name. The match is case-insensitive and stops at the first
// row whose modifier matches.
func ModifierToScript(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	for _, row := range crosswalk {
		if strings.EqualFold(row.modifier, name) {
			return row.script, true
		}
	}
	return "", false
}

// ScriptToModifier returns the Gettext modifier name for a Unicode
// script code. The match is case-insensitive and stops at the first
// row whose script matches.
func ScriptToModifier(code string) (string, bool) {
	if code == "" {
		return "", false
	}
	for _, row := range crosswalk {
		if strings.EqualFold(row.script, code) {
			return row.modifier, true
		}
	}
	return "", false
}
