package sitehandler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"advokat-site-backend/config"
	serviceprovider "advokat-site-backend/lib/dicts/service"
)

func testSettings() config.SiteSettings {
	return config.SiteSettings{
		BaseURL: "https://advokat.example",
		Name:    "Адвокат Смирнова Анна Викторовна",
		Phone:   "+7 (900) 123-45-67",
		Email:   "info@advokat.example",
		Address: "ул. Ленина, д. 10, офис 5",
		City:    "Москва",
	}
}

func TestSiteContent(t *testing.T) {
	serviceprovider.NewHandler()
	handler := impl{cfg: testSettings()}

	t.Run(`направления практики покрывают справочник услуг`, func(t *testing.T) {
		areas := handler.PracticeAreas()
		require.Len(t, areas, len(serviceprovider.Instance.List()))
		for _, area := range areas {
			require.Equal(t, serviceprovider.Instance.Label(area.Code), area.Title)
			require.NotEmpty(t, area.Summary)
		}
	})

	t.Run(`направление по коду`, func(t *testing.T) {
		area, err := handler.PracticeArea("family")
		require.NoError(t, err)
		require.Equal(t, "Семейные споры", area.Title)
	})

	t.Run(`неизвестный код - ошибка`, func(t *testing.T) {
		_, err := handler.PracticeArea("xyz123")
		require.Error(t, err)
	})

	t.Run(`канонические адреса строятся от базового`, func(t *testing.T) {
		for _, page := range handler.Pages() {
			require.True(t, strings.HasPrefix(page.Canonical, "https://advokat.example/"))
			require.NotEmpty(t, page.Title)
			require.NotEmpty(t, page.Description)
		}
	})

	t.Run(`jsonld содержит карточку адвоката`, func(t *testing.T) {
		doc := handler.JsonLD()
		require.Equal(t, "https://schema.org", doc.Context)
		require.Equal(t, "Attorney", doc.Type)
		require.Equal(t, "Адвокат Смирнова Анна Викторовна", doc.Name)
		require.Equal(t, "+7 (900) 123-45-67", doc.Telephone)
		require.Equal(t, "Москва", doc.Address.AddressLocality)
	})

	t.Run(`sitemap содержит все страницы`, func(t *testing.T) {
		body, err := handler.Sitemap()
		require.NoError(t, err)
		content := string(body)
		require.Contains(t, content, "<urlset")
		for _, page := range handler.Pages() {
			require.Contains(t, content, "<loc>"+page.Canonical+"</loc>")
		}
	})

	t.Run(`robots ссылается на sitemap`, func(t *testing.T) {
		require.Contains(t, handler.Robots(), "Sitemap: https://advokat.example/sitemap.xml")
	})
}
