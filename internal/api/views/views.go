// Package views renders the HTML pages of the marketplace.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/csrf"

	"github.com/m04kA/SMC-CarMarketWeb/internal/domain"
	"github.com/m04kA/SMC-CarMarketWeb/internal/forms"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page templates
const (
	PageHome         = "home.html"
	PageCoche        = "coche.html"
	PageLogin        = "login.html"
	PageRegister     = "register.html"
	PageProfile      = "profile.html"
	PageCocheForm    = "coche_form.html"
	PageSellerCoches = "seller_coches.html"
	PageAdminCoches  = "admin_coches.html"
	PageLoading      = "loading.html"
	PageError        = "error.html"
)

var pages = []string{
	PageHome, PageCoche, PageLogin, PageRegister, PageProfile,
	PageCocheForm, PageSellerCoches, PageAdminCoches, PageLoading, PageError,
}

// Page is the data every template receives
type Page struct {
	Title         string
	User          *domain.User
	Authenticated bool
	Admin         bool
	Vendedor      bool

	// Alert is the generic failure banner, Notice a success banner
	Alert  string
	Notice string

	Errors forms.FieldErrors
	Form   interface{}
	Data   interface{}
}

// FieldError returns the inline error of a form field
func (p Page) FieldError(field string) string {
	return p.Errors.Get(field)
}

type Logger interface {
	Error(format string, v ...interface{})
}

// Renderer holds parsed page templates
type Renderer struct {
	pages  map[string]*template.Template
	logger Logger
}

// New parses all templates once
func New(logger Logger) (*Renderer, error) {
	rd := &Renderer{
		pages:  make(map[string]*template.Template, len(pages)),
		logger: logger,
	}

	for _, name := range pages {
		tpl, err := template.New("layout.html").
			Funcs(baseFuncs()).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		rd.pages[name] = tpl
	}

	return rd, nil
}

// Render executes the page into a buffer first so a template error never leaves
// a half-written response
func (rd *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, page Page) {
	base, ok := rd.pages[name]
	if !ok {
		rd.logger.Error("Render: unknown template %s", name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	tpl, err := base.Clone()
	if err != nil {
		rd.logger.Error("Render: clone %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	tpl.Funcs(template.FuncMap{
		"csrfField": func() template.HTML { return csrf.TemplateField(r) },
	})

	if page.Errors == nil {
		page.Errors = forms.FieldErrors{}
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, page); err != nil {
		rd.logger.Error("Render: execute %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Loading renders the placeholder shown while the session is unresolved
func (rd *Renderer) Loading() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rd.Render(w, r, http.StatusServiceUnavailable, PageLoading, Page{Title: "Cargando…"})
	})
}

func baseFuncs() template.FuncMap {
	return template.FuncMap{
		"csrfField":  func() template.HTML { return "" },
		"price":      FormatPrice,
		"km":         FormatKm,
		"fuelLabel":  FuelLabel,
		"fuelTypes":  func() []domain.FuelType { return domain.FuelTypes },
		"id":         func(v int64) string { return strconv.FormatInt(v, 10) },
		"selectedID": func(current string, v int64) bool { return current == strconv.FormatInt(v, 10) },
	}
}

// FormatPrice formats euros with Spanish thousand separators: 12500 -> "12.500 €"
func FormatPrice(v float64) string {
	return groupThousands(strconv.FormatFloat(v, 'f', 0, 64)) + " €"
}

// FormatKm formats mileage: 85000 -> "85.000 km"
func FormatKm(v int) string {
	return groupThousands(strconv.Itoa(v)) + " km"
}

func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}

var fuelLabels = map[domain.FuelType]string{
	domain.FuelGasolina:  "Gasolina",
	domain.FuelDiesel:    "Diésel",
	domain.FuelHibrido:   "Híbrido",
	domain.FuelElectrico: "Eléctrico",
	domain.FuelGLP:       "GLP",
}

// FuelLabel returns the human label of a fuel type
func FuelLabel(f domain.FuelType) string {
	if label, ok := fuelLabels[f]; ok {
		return label
	}
	return string(f)
}
