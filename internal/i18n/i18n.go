// Package i18n holds the user-facing message catalogues.
package i18n

import (
	"strings"

	"github.com/verte-zerg/zscore/internal/model"
)

// Supported locale codes.
const (
	English = "en"
	Turkish = "tr"
)

// Messages is the full set of labels for one locale.
type Messages struct {
	Title              string
	Subtitle           string
	InputLabel         string
	InputPlaceholder   string
	Analyze            string
	Clear              string
	Samples            string
	Load               string
	Remove             string
	ResultsTitle       string
	WordCount          string
	UniqueWords        string
	LexicalDiversity   string
	ShannonEntropy     string
	BitsPerWord        string
	RatioExplanation   string
	EntropyExplanation string
	OfMax              string
	Interpretation     string
	Interpretations    map[model.Interpretation]string
	TopWords           string
	NoResults          string
	AllWords           string
	Word               string
	Count              string
	Share              string
	Preview            string
	Focus              string
	Quit               string
	HistoryTitle       string
	HistoryEmpty       string
	ClearHistory       string
	AnalyzedOn         string
	Trend              string
	DarkMode           string
	LightMode          string
	Language           string
}

var catalogues = map[string]Messages{
	English: {
		Title:              "ZScore",
		Subtitle:           "Shannon Entropy Calculator",
		InputLabel:         "Enter Text for Analysis",
		InputPlaceholder:   "Enter text here to analyze Shannon Entropy and other linguistic metrics...",
		Analyze:            "Analyze Text",
		Clear:              "Clear",
		Samples:            "Try these sample texts",
		Load:               "Load",
		Remove:             "Remove",
		ResultsTitle:       "Analysis Results",
		WordCount:          "Word Count",
		UniqueWords:        "Unique Words",
		LexicalDiversity:   "Lexical Diversity",
		ShannonEntropy:     "Shannon Entropy",
		BitsPerWord:        "bits/word",
		RatioExplanation:   "Ratio of unique words to total words",
		EntropyExplanation: "Measure of information content or unpredictability",
		OfMax:              "of max",
		Interpretation:     "Interpretation",
		Interpretations: map[model.Interpretation]string{
			model.InterpretationHigh:   "High entropy indicates complex, unpredictable text with diverse vocabulary.",
			model.InterpretationMedium: "Medium entropy suggests balanced, natural language with moderate complexity.",
			model.InterpretationLow:    "Low entropy indicates repetitive, predictable text with limited vocabulary.",
		},
		TopWords:     "Top %d Word Frequencies",
		NoResults:    "No analysis results yet. Enter some text and click Analyze.",
		AllWords:     "Word Frequencies",
		Word:         "Word",
		Count:        "Count",
		Share:        "Share",
		Preview:      "Text",
		Focus:        "Switch focus",
		Quit:         "Quit",
		HistoryTitle: "Analysis History",
		HistoryEmpty: "No analysis history yet",
		ClearHistory: "Clear History",
		AnalyzedOn:   "Analyzed on",
		Trend:        "Entropy trend",
		DarkMode:     "Dark Mode",
		LightMode:    "Light Mode",
		Language:     "Language",
	},
	Turkish: {
		Title:              "ZScore",
		Subtitle:           "Shannon Entropi Hesaplayıcı",
		InputLabel:         "Analiz için metin girin",
		InputPlaceholder:   "Shannon Entropi ve diğer dilsel ölçümleri analiz etmek için buraya metin girin...",
		Analyze:            "Metni Analiz Et",
		Clear:              "Temizle",
		Samples:            "Aşağıdaki örnek metinleri deneyin",
		Load:               "Yükle",
		Remove:             "Kaldır",
		ResultsTitle:       "Analiz Sonuçları",
		WordCount:          "Kelime Sayısı",
		UniqueWords:        "Benzersiz Kelimeler",
		LexicalDiversity:   "Sözcük Çeşitliliği",
		ShannonEntropy:     "Shannon Entropi",
		BitsPerWord:        "bit/kelime",
		RatioExplanation:   "Toplam kelimelere göre benzersiz kelimelerin oranı",
		EntropyExplanation: "Bilgi içeriği veya tahmin edilemezlik ölçüsü",
		OfMax:              "azami değerin",
		Interpretation:     "Yorum",
		Interpretations: map[model.Interpretation]string{
			model.InterpretationHigh:   "Yüksek entropi, çeşitli kelime dağarcığı olan karmaşık ve tahmin edilemeyen metni gösterir.",
			model.InterpretationMedium: "Orta entropi, orta düzeyde karmaşıklığa sahip dengeli, doğal dil kullanımını gösterir.",
			model.InterpretationLow:    "Düşük entropi, sınırlı kelime dağarcığı olan tekrarlayan, tahmin edilebilir metni gösterir.",
		},
		TopWords:     "En Sık Kullanılan %d Kelime",
		NoResults:    "Henüz analiz sonucu yok. Bir metin girin ve Analiz Et'e tıklayın.",
		AllWords:     "Kelime Sıklıkları",
		Word:         "Kelime",
		Count:        "Sayı",
		Share:        "Pay",
		Preview:      "Metin",
		Focus:        "Odak değiştir",
		Quit:         "Çıkış",
		HistoryTitle: "Analiz Geçmişi",
		HistoryEmpty: "Henüz analiz geçmişi yok",
		ClearHistory: "Geçmişi Temizle",
		AnalyzedOn:   "Analiz tarihi",
		Trend:        "Entropi eğilimi",
		DarkMode:     "Karanlık Mod",
		LightMode:    "Aydınlık Mod",
		Language:     "Dil",
	},
}

// Supported lists the available locale codes.
func Supported() []string {
	return []string{English, Turkish}
}

// IsSupported reports whether lang has a catalogue.
func IsSupported(lang string) bool {
	_, ok := catalogues[lang]
	return ok
}

// For returns the catalogue for lang, falling back to English.
func For(lang string) Messages {
	if m, ok := catalogues[lang]; ok {
		return m
	}
	return catalogues[English]
}

// Resolve picks the first supported locale among the candidates, in order.
// Candidates may be POSIX locale strings such as "tr_TR.UTF-8".
func Resolve(candidates ...string) string {
	for _, c := range candidates {
		if lang := normalize(c); IsSupported(lang) {
			return lang
		}
	}
	return English
}

// Next cycles to the following supported locale.
func Next(lang string) string {
	langs := Supported()
	for i, l := range langs {
		if l == lang {
			return langs[(i+1)%len(langs)]
		}
	}
	return English
}

func normalize(locale string) string {
	locale = strings.TrimSpace(strings.ToLower(locale))
	if i := strings.IndexAny(locale, "_.-@"); i >= 0 {
		locale = locale[:i]
	}
	return locale
}
