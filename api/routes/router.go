package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ledgerline/backend/api/controllers"
	"github.com/ledgerline/backend/api/middleware"
	"github.com/ledgerline/backend/internal/auth"
	"github.com/ledgerline/backend/internal/insights"
	"github.com/ledgerline/backend/internal/integrations"
	"github.com/ledgerline/backend/internal/storage"
	"github.com/ledgerline/backend/pkg/config"
	"github.com/ledgerline/backend/pkg/logger"
	"github.com/ledgerline/backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store storage.Store,
	authService auth.Service,
	generator insights.Generator,
	tester integrations.ConnectionTester,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()

	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(middleware.AuthRateLimit(cfg.AuthRateLimit, logg))
		r.Post("/login", controllers.AuthLogin(authService, logg))
		r.Post("/register", controllers.AuthRegister(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", controllers.ClientList(store, logg))
			r.Post("/", controllers.ClientCreate(store, logg))
			r.Get("/{clientId}", controllers.ClientDetail(store, logg))
			r.Patch("/{clientId}", controllers.ClientUpdate(store, logg))
			r.Delete("/{clientId}", controllers.ClientDelete(store, logg))
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", controllers.InvoiceList(store, logg))
			r.Post("/", controllers.InvoiceCreate(store, logg))
			r.Get("/{invoiceId}", controllers.InvoiceDetail(store, logg))
			r.Patch("/{invoiceId}", controllers.InvoiceUpdate(store, logg))
			r.Delete("/{invoiceId}", controllers.InvoiceDelete(store, logg))
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Get("/", controllers.ExpenseList(store, logg))
			r.Post("/", controllers.ExpenseCreate(store, logg))
			r.Get("/{expenseId}", controllers.ExpenseDetail(store, logg))
			r.Patch("/{expenseId}", controllers.ExpenseUpdate(store, logg))
			r.Delete("/{expenseId}", controllers.ExpenseDelete(store, logg))
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", controllers.EmployeeList(store, logg))
			r.Post("/", controllers.EmployeeCreate(store, logg))
			r.Get("/{employeeId}", controllers.EmployeeDetail(store, logg))
			r.Patch("/{employeeId}", controllers.EmployeeUpdate(store, logg))
			r.Delete("/{employeeId}", controllers.EmployeeDelete(store, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", controllers.ReportList(store, logg))
			r.Post("/generate", controllers.ReportGenerate(store, generator, logg))
			r.Get("/{reportId}", controllers.ReportDetail(store, logg))
			r.Patch("/{reportId}", controllers.ReportUpdate(store, logg))
			r.Delete("/{reportId}", controllers.ReportDelete(store, logg))
		})

		r.Route("/integrations", func(r chi.Router) {
			r.Post("/", controllers.IntegrationCreate(store, logg))
			r.Post("/test", controllers.IntegrationTest(tester, logg))
			// The list route keys on client id, the write routes on
			// integration id; chi requires one wildcard name per segment.
			r.Get("/{id}", controllers.IntegrationList(store, logg))
			r.Patch("/{id}", controllers.IntegrationUpdate(store, logg))
			r.Delete("/{id}", controllers.IntegrationDelete(store, logg))
		})

		r.Route("/settings", func(r chi.Router) {
			r.Get("/", controllers.SettingsFetch(store, logg))
			r.Patch("/", controllers.SettingsUpdate(store, logg))
		})

		r.Post("/support/chat", controllers.SupportChat(generator, logg))
		r.Post("/uploads/receipts", controllers.ReceiptUpload(generator, logg))
	})

	return r
}
