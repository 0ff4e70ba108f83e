package insights

import (
	"fmt"
	"net/http"

	"cryptogold-alerts/models/constants"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Probes interface {
	ListenAndServe()
}

// Check reports whether one aspect of the application is healthy.
type Check func() bool

type probes struct {
	checks []Check
}

// NewProbes builds the liveness/readiness endpoint. Every check must pass
// for the application to be reported ready.
func NewProbes(checks ...Check) Probes {
	return &probes{checks: checks}
}

func (p *probes) ListenAndServe() {
	router := chi.NewRouter()
	router.Get("/liveness", p.liveness)
	router.Get("/readiness", p.readiness)

	addr := fmt.Sprintf(":%d", viper.GetInt(constants.ProbePort))
	log.Info().Msgf("Probes listening on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Error().Err(err).Msg("Probe endpoint stopped")
	}
}

func (p *probes) liveness(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (p *probes) readiness(w http.ResponseWriter, r *http.Request) {
	for _, check := range p.checks {
		if !check() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("KO"))
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
