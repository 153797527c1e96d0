package textstat

// Reference letter frequencies for English prose. Process-wide constants,
// shared read-only by every concurrent search trial.
var englishFrequency = map[rune]float64{
	'a': 0.082,
	'b': 0.015,
	'c': 0.028,
	'd': 0.043,
	'e': 0.127,
	'f': 0.022,
	'g': 0.020,
	'h': 0.061,
	'i': 0.070,
	'j': 0.0015,
	'k': 0.0077,
	'l': 0.040,
	'm': 0.024,
	'n': 0.067,
	'o': 0.075,
	'p': 0.019,
	'q': 0.00095,
	'r': 0.060,
	's': 0.063,
	't': 0.091,
	'u': 0.028,
	'v': 0.0098,
	'w': 0.024,
	'x': 0.0015,
	'y': 0.020,
	'z': 0.00074,
}

// Reference bigram frequencies for English prose, most common first.
// https://en.wikipedia.org/wiki/Bigram
var englishBigramFrequency = map[string]float64{
	"th": 0.0356,
	"he": 0.0307,
	"in": 0.0245,
	"er": 0.0205,
	"an": 0.0199,
	"re": 0.0185,
	"on": 0.0176,
	"at": 0.0149,
	"en": 0.0145,
	"nd": 0.0135,
	"ti": 0.0134,
	"es": 0.0134,
	"or": 0.0128,
	"te": 0.0120,
	"of": 0.0117,
	"ed": 0.0117,
	"is": 0.0113,
	"it": 0.0112,
	"al": 0.0109,
	"ar": 0.0107,
	"st": 0.0105,
	"to": 0.0105,
	"nt": 0.0104,
	"ng": 0.0095,
	"se": 0.0093,
	"ha": 0.0093,
	"as": 0.0087,
	"ou": 0.0087,
	"io": 0.0083,
	"le": 0.0083,
	"ve": 0.0083,
	"co": 0.0079,
	"me": 0.0079,
	"de": 0.0076,
	"hi": 0.0076,
	"ri": 0.0073,
	"ro": 0.0073,
	"ic": 0.0070,
	"ne": 0.0069,
	"ea": 0.0069,
	"ra": 0.0069,
	"ce": 0.0065,
}
