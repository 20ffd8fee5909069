package task

import (
	"context"
	"encoding/json"
	"fmt"

	qport "github.com/MdialloC19/backend-IPDL/internal/infrastructure/queue/port"
	gateway "github.com/MdialloC19/backend-IPDL/internal/pkg/notification/gateway/port"
)

// SendEmailTaskType is the queue task name for the account-verification email.
const SendEmailTaskType = "notification:send_email"

// SendEmailTaskPayload is the JSON payload transported via the queue.
type SendEmailTaskPayload struct {
	To        string `json:"to"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Secret    string `json:"secret"`
}

// RegisterSendEmailTask binds the verification-email handler to the worker.
func RegisterSendEmailTask(srv qport.Server, mail gateway.EmailGateway) {
	srv.Register(SendEmailTaskType, func(ctx context.Context, t qport.Task) error {
		var p SendEmailTaskPayload
		if err := json.Unmarshal(t.Payload, &p); err != nil {
			// malformed payload: retrying will not help
			return nil
		}
		return mail.Send(ctx, p.To,
			"[LAMBTECH] Autorisation d'inscription à la plateforme",
			verificationBody(p))
	})
}

func verificationBody(p SendEmailTaskPayload) string {
	return fmt.Sprintf(`<html lang="fr-FR"><body>
<div><h3>Autorisation d'inscription à la plateforme</h3></div>
<p>Bienvenue %s %s,</p>
<p>Vous êtes autorisé à créer votre compte sur la plateforme.</p>
<p>Votre code secret personnel&nbsp;: <b>%s</b></p>
</body></html>`, p.Firstname, p.Lastname, p.Secret)
}
