package sitehandler

import (
	"encoding/xml"
	"strings"

	"github.com/pkg/errors"

	"advokat-site-backend/config"
	serviceprovider "advokat-site-backend/lib/dicts/service"
	siteapimodels "advokat-site-backend/models/api/site"
)

type Provider interface {
	PracticeAreas() []siteapimodels.PracticeAreaView
	PracticeArea(code string) (siteapimodels.PracticeAreaView, error)
	Contacts() siteapimodels.ContactInfoView
	Pages() []siteapimodels.PageMetaView
	JsonLD() siteapimodels.AttorneyJsonLD
	Sitemap() ([]byte, error)
	Robots() string
}

var Instance Provider

func NewHandler(cfg config.SiteSettings) {
	Instance = impl{cfg: cfg}
}

type impl struct {
	cfg config.SiteSettings
}

type practiceArea struct {
	code    string
	summary string
	details []string
}

// названия направлений берутся из справочника услуг, здесь только описания
var practiceAreas = []practiceArea{
	{
		code:    "criminal",
		summary: "Защита на следствии и в суде по уголовным делам любой сложности.",
		details: []string{"Защита подозреваемых и обвиняемых", "Представление интересов потерпевших", "Обжалование приговоров"},
	},
	{
		code:    "civil",
		summary: "Споры о взыскании долгов, возмещении ущерба, защите прав потребителей.",
		details: []string{"Досудебные претензии", "Иски и отзывы", "Исполнительное производство"},
	},
	{
		code:    "family",
		summary: "Развод, раздел имущества, алименты, определение места жительства детей.",
		details: []string{"Расторжение брака", "Раздел имущества супругов", "Споры о детях"},
	},
	{
		code:    "inheritance",
		summary: "Оформление и оспаривание наследства, восстановление сроков.",
		details: []string{"Принятие наследства", "Оспаривание завещаний", "Раздел наследственного имущества"},
	},
	{
		code:    "housing",
		summary: "Выселение, признание права на жильё, споры с управляющими компаниями.",
		details: []string{"Признание права собственности", "Споры о выселении", "Заливы и ущерб жилью"},
	},
	{
		code:    "labor",
		summary: "Восстановление на работе, взыскание зарплаты, трудовые конфликты.",
		details: []string{"Незаконное увольнение", "Взыскание заработной платы", "Трудовые инспекции"},
	},
	{
		code:    "administrative",
		summary: "Обжалование штрафов и действий должностных лиц.",
		details: []string{"Дела об административных правонарушениях", "Обжалование постановлений", "Споры с госорганами"},
	},
	{
		code:    "arbitrage",
		summary: "Арбитражные споры, договорная работа, взыскание задолженности.",
		details: []string{"Споры по договорам", "Корпоративные конфликты", "Банкротство"},
	},
	{
		code:    "realty",
		summary: "Сопровождение сделок с недвижимостью, проверка юридической чистоты.",
		details: []string{"Проверка объектов", "Сопровождение сделок", "Споры по сделкам"},
	},
	{
		code:    "consultation",
		summary: "Устная консультация по любому правовому вопросу.",
		details: []string{"Оценка перспектив дела", "План действий", "Ответы на вопросы"},
	},
}

type page struct {
	slug        string
	path        string
	title       string
	description string
}

var pages = []page{
	{"home", "/", "Адвокат в Москве - консультации и защита в суде", "Услуги адвоката: уголовные, гражданские, семейные дела. Запись на консультацию онлайн."},
	{"services", "/uslugi", "Услуги адвоката", "Полный перечень услуг адвоката с описанием и порядком работы."},
	{"about", "/ob-advokate", "Об адвокате", "Опыт, образование и принципы работы адвоката."},
	{"contacts", "/kontakty", "Контакты адвоката", "Адрес офиса, телефон и форма обратной связи."},
	{"appointment", "/zapis", "Запись на консультацию", "Онлайн-запись на консультацию к адвокату."},
}

func (i impl) PracticeAreas() []siteapimodels.PracticeAreaView {
	result := make([]siteapimodels.PracticeAreaView, 0, len(practiceAreas))
	for _, area := range practiceAreas {
		result = append(result, i.areaView(area))
	}
	return result
}

func (i impl) PracticeArea(code string) (siteapimodels.PracticeAreaView, error) {
	for _, area := range practiceAreas {
		if area.code == code {
			return i.areaView(area), nil
		}
	}
	return siteapimodels.PracticeAreaView{}, errors.New("направление не найдено")
}

func (i impl) areaView(area practiceArea) siteapimodels.PracticeAreaView {
	return siteapimodels.PracticeAreaView{
		Code:    area.code,
		Title:   serviceprovider.Instance.Label(area.code),
		Summary: area.summary,
		Details: area.details,
	}
}

func (i impl) Contacts() siteapimodels.ContactInfoView {
	return siteapimodels.ContactInfoView{
		Name:      i.cfg.Name,
		Phone:     i.cfg.Phone,
		Email:     i.cfg.Email,
		Address:   i.cfg.Address,
		City:      i.cfg.City,
		WorkHours: "Пн-Пт 9:00-19:00, Сб по записи",
	}
}

func (i impl) Pages() []siteapimodels.PageMetaView {
	base := strings.TrimRight(i.cfg.BaseURL, "/")
	result := make([]siteapimodels.PageMetaView, 0, len(pages))
	for _, p := range pages {
		result = append(result, siteapimodels.PageMetaView{
			Slug:        p.slug,
			Path:        p.path,
			Title:       p.title,
			Description: p.description,
			Canonical:   base + p.path,
		})
	}
	return result
}

func (i impl) JsonLD() siteapimodels.AttorneyJsonLD {
	return siteapimodels.AttorneyJsonLD{
		Context:   "https://schema.org",
		Type:      "Attorney",
		Name:      i.cfg.Name,
		URL:       i.cfg.BaseURL,
		Telephone: i.cfg.Phone,
		Email:     i.cfg.Email,
		Address: siteapimodels.PostalAddress{
			Type:            "PostalAddress",
			StreetAddress:   i.cfg.Address,
			AddressLocality: i.cfg.City,
			AddressCountry:  "RU",
		},
		AreaServed: i.cfg.City,
	}
}

func (i impl) Sitemap() ([]byte, error) {
	base := strings.TrimRight(i.cfg.BaseURL, "/")
	urls := make([]siteapimodels.SitemapURL, 0, len(pages))
	for _, p := range pages {
		priority := "0.8"
		if p.path == "/" {
			priority = "1.0"
		}
		urls = append(urls, siteapimodels.SitemapURL{
			Loc:        base + p.path,
			ChangeFreq: "monthly",
			Priority:   priority,
		})
	}
	doc := siteapimodels.Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "ошибка сборки sitemap")
	}
	return append([]byte(xml.Header), body...), nil
}

func (i impl) Robots() string {
	base := strings.TrimRight(i.cfg.BaseURL, "/")
	return "User-agent: *\nAllow: /\nSitemap: " + base + "/sitemap.xml\n"
}
