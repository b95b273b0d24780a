package server

import (
	"errors"
	"net/http"

	"droscher.com/MyWhiskies/pkg/listing"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/policy"
	"droscher.com/MyWhiskies/pkg/validation"
)

// producerListData feeds the distillery and bottler list pages.
type producerListData[T any] struct {
	Owner   *model.User
	IsOwn   bool
	Page    listing.Page[T]
	Lengths []int
	Kind    string
}

// producerData feeds the distillery and bottler detail pages.
type producerData[T any] struct {
	Producer T
	Owner    *model.User
	IsOwn    bool
	Kind     string
	List     BottleList
}

type producerFormData struct {
	Form   producerForm
	Action string
	Kind   string
}

func (w *Web) renderProducerForm(rw http.ResponseWriter, r *http.Request, status int, title string,
	data producerFormData, errs validation.FieldErrors,
) {
	w.render(rw, r, status, "producer_form.html", Page{Title: title, Errors: errs, Data: data})
}

// refuseOrFail answers policy refusals on the viewer's home page and
// everything else through fail.
func (w *Web) refuseOrFail(rw http.ResponseWriter, r *http.Request, err error) {
	if isRefusal(err) {
		w.refuse(rw, r, err)

		return
	}

	w.fail(rw, r, err)
}

func isRefusal(err error) bool {
	return errors.Is(err, policy.ErrIssue) || errors.Is(err, policy.ErrHasBottles)
}
