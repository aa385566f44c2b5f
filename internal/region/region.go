// Package region lists the countries the store ships to.
package region

import "strings"

// Country is a shipping destination.
type Country struct {
	Code      string   `json:"code"`
	NameEn    string   `json:"nameEn"`
	NameAr    string   `json:"nameAr"`
	PhoneCode string   `json:"phoneCode"`
	Regions   []string `json:"regions,omitempty"`
}

// Name returns the country name for the language tag.
func (c Country) Name(lang string) string {
	if lang == "ar" {
		return c.NameAr
	}
	return c.NameEn
}

var countries = []Country{
	{Code: "SY", NameEn: "Syria", NameAr: "سوريا", PhoneCode: "+963", Regions: []string{"Damascus", "Aleppo", "Homs", "Hama", "Latakia", "Tartus", "Deir ez-Zor", "Raqqa", "Hasakah", "Idlib", "Daraa", "Suwayda", "Quneitra", "Damascus Countryside"}},
	{Code: "AE", NameEn: "United Arab Emirates", NameAr: "الإمارات العربية المتحدة", PhoneCode: "+971", Regions: []string{"Abu Dhabi", "Dubai", "Sharjah", "Ajman", "Umm Al Quwain", "Ras Al Khaimah", "Fujairah"}},
	{Code: "SA", NameEn: "Saudi Arabia", NameAr: "المملكة العربية السعودية", PhoneCode: "+966", Regions: []string{"Riyadh", "Jeddah", "Mecca", "Medina", "Dammam", "Khobar", "Tabuk", "Abha"}},
	{Code: "EG", NameEn: "Egypt", NameAr: "مصر", PhoneCode: "+20", Regions: []string{"Cairo", "Alexandria", "Giza", "Sharm El Sheikh", "Luxor", "Aswan", "Hurghada"}},
	{Code: "JO", NameEn: "Jordan", NameAr: "الأردن", PhoneCode: "+962", Regions: []string{"Amman", "Irbid", "Zarqa", "Aqaba", "Madaba", "Jerash"}},
	{Code: "LB", NameEn: "Lebanon", NameAr: "لبنان", PhoneCode: "+961", Regions: []string{"Beirut", "Tripoli", "Sidon", "Tyre", "Byblos", "Jounieh"}},
	{Code: "IQ", NameEn: "Iraq", NameAr: "العراق", PhoneCode: "+964", Regions: []string{"Baghdad", "Basra", "Erbil", "Mosul", "Sulaymaniyah", "Kirkuk", "Najaf", "Karbala"}},
	{Code: "KW", NameEn: "Kuwait", NameAr: "الكويت", PhoneCode: "+965", Regions: []string{"Kuwait City", "Hawalli", "Salmiya", "Jahra", "Farwaniya"}},
	{Code: "QA", NameEn: "Qatar", NameAr: "قطر", PhoneCode: "+974", Regions: []string{"Doha", "Al Wakrah", "Al Khor", "Dukhan", "Mesaieed"}},
	{Code: "BH", NameEn: "Bahrain", NameAr: "البحرين", PhoneCode: "+973", Regions: []string{"Manama", "Riffa", "Muharraq", "Hamad Town", "Isa Town"}},
	{Code: "OM", NameEn: "Oman", NameAr: "عُمان", PhoneCode: "+968", Regions: []string{"Muscat", "Salalah", "Sohar", "Nizwa", "Sur"}},
	{Code: "YE", NameEn: "Yemen", NameAr: "اليمن", PhoneCode: "+967", Regions: []string{"Sanaa", "Aden", "Taiz", "Hodeidah", "Mukalla"}},
	{Code: "PS", NameEn: "Palestine", NameAr: "فلسطين", PhoneCode: "+970", Regions: []string{"Gaza", "Ramallah", "Hebron", "Nablus", "Bethlehem", "Jenin"}},
	{Code: "LY", NameEn: "Libya", NameAr: "ليبيا", PhoneCode: "+218", Regions: []string{"Tripoli", "Benghazi", "Misrata", "Sabha", "Tobruk"}},
	{Code: "TN", NameEn: "Tunisia", NameAr: "تونس", PhoneCode: "+216", Regions: []string{"Tunis", "Sfax", "Sousse", "Kairouan", "Bizerte"}},
	{Code: "DZ", NameEn: "Algeria", NameAr: "الجزائر", PhoneCode: "+213", Regions: []string{"Algiers", "Oran", "Constantine", "Annaba", "Blida"}},
	{Code: "MA", NameEn: "Morocco", NameAr: "المغرب", PhoneCode: "+212", Regions: []string{"Casablanca", "Rabat", "Marrakech", "Fes", "Tangier", "Agadir"}},
	{Code: "SD", NameEn: "Sudan", NameAr: "السودان", PhoneCode: "+249", Regions: []string{"Khartoum", "Omdurman", "Port Sudan", "Kassala", "Nyala"}},
	{Code: "TR", NameEn: "Turkey", NameAr: "تركيا", PhoneCode: "+90", Regions: []string{"Istanbul", "Ankara", "Izmir", "Antalya", "Bursa", "Gaziantep"}},
	{Code: "US", NameEn: "United States", NameAr: "الولايات المتحدة", PhoneCode: "+1"},
	{Code: "GB", NameEn: "United Kingdom", NameAr: "المملكة المتحدة", PhoneCode: "+44"},
	{Code: "DE", NameEn: "Germany", NameAr: "ألمانيا", PhoneCode: "+49"},
	{Code: "FR", NameEn: "France", NameAr: "فرنسا", PhoneCode: "+33"},
	{Code: "IT", NameEn: "Italy", NameAr: "إيطاليا", PhoneCode: "+39"},
	{Code: "ES", NameEn: "Spain", NameAr: "إسبانيا", PhoneCode: "+34"},
	{Code: "NL", NameEn: "Netherlands", NameAr: "هولندا", PhoneCode: "+31"},
	{Code: "BE", NameEn: "Belgium", NameAr: "بلجيكا", PhoneCode: "+32"},
	{Code: "SE", NameEn: "Sweden", NameAr: "السويد", PhoneCode: "+46"},
	{Code: "NO", NameEn: "Norway", NameAr: "النرويج", PhoneCode: "+47"},
	{Code: "DK", NameEn: "Denmark", NameAr: "الدنمارك", PhoneCode: "+45"},
	{Code: "CH", NameEn: "Switzerland", NameAr: "سويسرا", PhoneCode: "+41"},
	{Code: "AT", NameEn: "Austria", NameAr: "النمسا", PhoneCode: "+43"},
	{Code: "AU", NameEn: "Australia", NameAr: "أستراليا", PhoneCode: "+61"},
	{Code: "CA", NameEn: "Canada", NameAr: "كندا", PhoneCode: "+1"},
	{Code: "JP", NameEn: "Japan", NameAr: "اليابان", PhoneCode: "+81"},
	{Code: "CN", NameEn: "China", NameAr: "الصين", PhoneCode: "+86"},
	{Code: "IN", NameEn: "India", NameAr: "الهند", PhoneCode: "+91"},
	{Code: "PK", NameEn: "Pakistan", NameAr: "باكستان", PhoneCode: "+92"},
	{Code: "BD", NameEn: "Bangladesh", NameAr: "بنغلاديش", PhoneCode: "+880"},
	{Code: "MY", NameEn: "Malaysia", NameAr: "ماليزيا", PhoneCode: "+60"},
	{Code: "ID", NameEn: "Indonesia", NameAr: "إندونيسيا", PhoneCode: "+62"},
	{Code: "SG", NameEn: "Singapore", NameAr: "سنغافورة", PhoneCode: "+65"},
	{Code: "PH", NameEn: "Philippines", NameAr: "الفلبين", PhoneCode: "+63"},
	{Code: "TH", NameEn: "Thailand", NameAr: "تايلاند", PhoneCode: "+66"},
	{Code: "VN", NameEn: "Vietnam", NameAr: "فيتنام", PhoneCode: "+84"},
	{Code: "KR", NameEn: "South Korea", NameAr: "كوريا الجنوبية", PhoneCode: "+82"},
	{Code: "ZA", NameEn: "South Africa", NameAr: "جنوب أفريقيا", PhoneCode: "+27"},
	{Code: "NG", NameEn: "Nigeria", NameAr: "نيجيريا", PhoneCode: "+234"},
	{Code: "KE", NameEn: "Kenya", NameAr: "كينيا", PhoneCode: "+254"},
	{Code: "BR", NameEn: "Brazil", NameAr: "البرازيل", PhoneCode: "+55"},
	{Code: "MX", NameEn: "Mexico", NameAr: "المكسيك", PhoneCode: "+52"},
	{Code: "AR", NameEn: "Argentina", NameAr: "الأرجنتين", PhoneCode: "+54"},
	{Code: "CO", NameEn: "Colombia", NameAr: "كولومبيا", PhoneCode: "+57"},
	{Code: "CL", NameEn: "Chile", NameAr: "تشيلي", PhoneCode: "+56"},
	{Code: "RU", NameEn: "Russia", NameAr: "روسيا", PhoneCode: "+7"},
	{Code: "UA", NameEn: "Ukraine", NameAr: "أوكرانيا", PhoneCode: "+380"},
	{Code: "PL", NameEn: "Poland", NameAr: "بولندا", PhoneCode: "+48"},
	{Code: "CZ", NameEn: "Czech Republic", NameAr: "جمهورية التشيك", PhoneCode: "+420"},
	{Code: "GR", NameEn: "Greece", NameAr: "اليونان", PhoneCode: "+30"},
	{Code: "PT", NameEn: "Portugal", NameAr: "البرتغال", PhoneCode: "+351"},
	{Code: "IR", NameEn: "Iran", NameAr: "إيران", PhoneCode: "+98"},
	{Code: "AF", NameEn: "Afghanistan", NameAr: "أفغانستان", PhoneCode: "+93"},
}

var byCode = func() map[string]int {
	m := make(map[string]int, len(countries))
	for i, c := range countries {
		m[c.Code] = i
	}
	return m
}()

// All returns every country in display order.
func All() []Country {
	out := make([]Country, len(countries))
	copy(out, countries)
	return out
}

// ByCode looks up a country by its ISO 3166 alpha-2 code. Case is ignored.
func ByCode(code string) (Country, bool) {
	i, ok := byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Country{}, false
	}
	return countries[i], true
}

// Regions returns the known regions of a country, or an empty list.
func Regions(code string) []string {
	c, ok := ByCode(code)
	if !ok || c.Regions == nil {
		return []string{}
	}
	return append([]string(nil), c.Regions...)
}

// EnglishName returns the English name for code, or code itself when unknown.
func EnglishName(code string) string {
	if c, ok := ByCode(code); ok {
		return c.NameEn
	}
	return code
}
