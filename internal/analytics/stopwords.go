package analytics

// stopWords are common Portuguese function words excluded from the word
// cloud, already accent-folded.
var stopWords = map[string]bool{
	"a": true, "ao": true, "aos": true, "aquela": true, "aquelas": true,
	"aquele": true, "aqueles": true, "aquilo": true, "as": true, "ate": true,
	"com": true, "como": true, "da": true, "das": true, "de": true,
	"dela": true, "delas": true, "dele": true, "deles": true, "depois": true,
	"do": true, "dos": true, "e": true, "ela": true, "elas": true,
	"ele": true, "eles": true, "em": true, "entre": true, "era": true,
	"essa": true, "essas": true, "esse": true, "esses": true, "esta": true,
	"estas": true, "este": true, "estes": true, "eu": true, "foi": true,
	"for": true, "foram": true, "ha": true, "isso": true, "isto": true,
	"ja": true, "lhe": true, "lhes": true, "mais": true, "mas": true,
	"me": true, "mesmo": true, "meu": true, "minha": true, "muito": true,
	"na": true, "nao": true, "nas": true, "nem": true, "no": true,
	"nos": true, "nossa": true, "nosso": true, "num": true, "numa": true,
	"numas": true, "nuns": true, "o": true, "os": true, "ou": true,
	"para": true, "pela": true, "pelas": true, "pelo": true, "pelos": true,
	"por": true, "qual": true, "quando": true, "que": true, "quem": true,
	"sao": true, "se": true, "sem": true, "ser": true, "seu": true,
	"sua": true, "tambem": true, "te": true, "tem": true, "tinha": true,
	"tu": true, "tua": true, "tudo": true, "um": true, "uma": true,
	"umas": true, "uns": true, "vai": true, "voce": true, "voces": true,
	"vos": true,
}
