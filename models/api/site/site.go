package siteapimodels

import "encoding/xml"

type PracticeAreaView struct {
	Code    string   `json:"code"`    // Код услуги из справочника
	Title   string   `json:"title"`   // Название направления
	Summary string   `json:"summary"` // Краткое описание
	Details []string `json:"details"` // Что входит в услугу
}

type ContactInfoView struct {
	Name      string `json:"name"`       // Имя адвоката
	Phone     string `json:"phone"`      // Телефон
	Email     string `json:"email"`      // Email
	Address   string `json:"address"`    // Адрес офиса
	City      string `json:"city"`       // Город
	WorkHours string `json:"work_hours"` // Часы приёма
}

type PageMetaView struct {
	Slug        string `json:"slug"`        // Ключ страницы
	Path        string `json:"path"`        // Путь на сайте
	Title       string `json:"title"`       // SEO заголовок
	Description string `json:"description"` // SEO описание
	Canonical   string `json:"canonical"`   // Канонический адрес
}

// AttorneyJsonLD - структурированные данные schema.org для карточки адвоката
type AttorneyJsonLD struct {
	Context    string        `json:"@context"`
	Type       string        `json:"@type"`
	Name       string        `json:"name"`
	URL        string        `json:"url"`
	Telephone  string        `json:"telephone"`
	Email      string        `json:"email"`
	Address    PostalAddress `json:"address"`
	AreaServed string        `json:"areaServed"`
}

type PostalAddress struct {
	Type            string `json:"@type"`
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressCountry  string `json:"addressCountry"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

type SitemapURL struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}
