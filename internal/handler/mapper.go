package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/bagdasarian/devteam-dashboard/internal/domain"
	"github.com/bagdasarian/devteam-dashboard/internal/service"
)

// httpRequestToForm читает ввод формы: JSON-объект строк или urlencoded-форму
func httpRequestToForm(r *http.Request) (domain.Form, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			return nil, domain.NewBadRequestError("malformed form body")
		}
		form := make(domain.Form, len(r.PostForm))
		for key, values := range r.PostForm {
			if len(values) > 0 {
				form[key] = values[0]
			}
		}
		return form, nil
	}

	var form domain.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		return nil, domain.NewBadRequestError("request body must be a JSON object of strings")
	}
	if form == nil {
		form = domain.Form{}
	}
	return form, nil
}

func pathID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, domain.NewBadRequestError("id must be an integer")
	}
	return id, nil
}

func pathCollection(r *http.Request) (domain.Collection, error) {
	return domain.ParseCollection(r.PathValue("collection"))
}

func domainPendingToHTTP(p *service.PendingDeletion) DeleteRequestResponse {
	return DeleteRequestResponse{
		Token:      p.Token,
		Collection: string(p.Collection),
		ID:         p.ID,
		Prompt:     p.Prompt,
		ExpiresAt:  p.ExpiresAt.Format(time.RFC3339),
	}
}
