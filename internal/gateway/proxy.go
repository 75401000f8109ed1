package gateway

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lojaplena/favoritos/internal/httpapi"
)

// Hop-by-hop headers não atravessam o proxy.
var hopHeaders = []string{
	"Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Proxy encaminha requisições já autenticadas para um serviço interno,
// removendo o prefixo externo do caminho. A resposta do serviço é repassada
// sem inspeção; falha de transporte vira 502, distinguível de qualquer erro
// de aplicação do serviço de destino.
type Proxy struct {
	targetBase  string
	stripPrefix string
	client      *http.Client
}

// NewProxy cria o despachante para o serviço de destino.
func NewProxy(targetBase, stripPrefix string) *Proxy {
	return &Proxy{
		targetBase:  strings.TrimRight(targetBase, "/"),
		stripPrefix: stripPrefix,
		client: &http.Client{
			Timeout: 30 * time.Second,
			// Redirecionamentos do serviço interno são repassados ao cliente.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, p.stripPrefix)
	upstreamURL := p.targetBase + path
	if r.URL.RawQuery != "" {
		upstreamURL += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, upstreamURL, r.Body)
	if err != nil {
		httpapi.WriteMessage(w, http.StatusBadGateway, "Serviço interno indisponível.")
		return
	}

	req.Header = r.Header.Clone()
	for _, h := range hopHeaders {
		req.Header.Del(h)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("target", upstreamURL).Msg("falha ao encaminhar requisição")
		httpapi.WriteMessage(w, http.StatusBadGateway, "Serviço interno indisponível.")
		return
	}
	defer resp.Body.Close()

	header := w.Header()
	for key, values := range resp.Header {
		for _, value := range values {
			header.Add(key, value)
		}
	}
	for _, h := range hopHeaders {
		header.Del(h)
	}

	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
}
