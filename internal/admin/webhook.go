package admin

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"propadmin/internal/observability"
)

// RedeployNotifier fires the downstream rebuild webhook after a successful
// mutation. The call is fire-and-forget: it runs detached from the request
// and a failure is only ever logged, never returned to the caller.
type RedeployNotifier struct {
	URL    string
	Client *http.Client
}

func NewRedeployNotifier(url string) *RedeployNotifier {
	return &RedeployNotifier{
		URL:    url,
		Client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (n *RedeployNotifier) Notify() {
	if n == nil || n.URL == "" {
		return
	}
	go n.send()
}

func (n *RedeployNotifier) send() {
	resp, err := n.Client.Post(n.URL, "application/json", nil)
	if err != nil {
		observability.WebhookFailuresTotal.Inc()
		log.WithError(err).Warn("redeploy webhook failed")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observability.WebhookFailuresTotal.Inc()
		log.WithField("status", resp.StatusCode).Warn("redeploy webhook rejected")
		return
	}
	log.Info("redeploy webhook triggered")
}
