package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/defaults"
	"droscher.com/MyWhiskies/pkg/images"
	"droscher.com/MyWhiskies/pkg/integrations"
	"droscher.com/MyWhiskies/pkg/listing"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/policy"
	"droscher.com/MyWhiskies/pkg/repository"
	"droscher.com/MyWhiskies/pkg/validation"
)

const distilleryKind = "distillery"

type distilleryBottles interface {
	GetBottlesForDistillery(ctx context.Context, distilleryID uint) ([]*model.Bottle, error)
}

type DistilleryServer struct {
	*Web
	users        userLookup
	distilleries repository.DistilleryRepository
	bottles      distilleryBottles
	images       *images.Manager
	lookup       integrations.Integration
	validator    *validation.Validator
	picker       listing.Picker
}

func NewDistilleryServer(web *Web, users userLookup, distilleries repository.DistilleryRepository, bottles distilleryBottles,
	imageManager *images.Manager, lookup integrations.Integration, validator *validation.Validator, picker listing.Picker,
) *DistilleryServer {
	return &DistilleryServer{
		Web: web, users: users, distilleries: distilleries, bottles: bottles, images: imageManager,
		lookup: lookup, validator: validator, picker: picker,
	}
}

func (d *DistilleryServer) ListDistilleries(w http.ResponseWriter, r *http.Request) {
	owner, err := collectionOwner(r, d.users)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	distilleries, err := d.distilleries.GetDistilleriesForUser(r.Context(), owner.ID)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	data := producerListData[*model.Distillery]{
		Owner:   owner,
		IsOwn:   policy.IsOwnList(auth.Viewer(r.Context()), owner),
		Page:    listing.Paginate(distilleries, d.listLength(w, r, distilleryListCookie), pageNumber(r)),
		Lengths: listLengths,
		Kind:    distilleryKind,
	}

	d.render(w, r, http.StatusOK, "producers.html", Page{Title: owner.Username + "'s distilleries", Data: data})
}

// ShowDistillery lists the bottles crediting the distillery that the viewer
// may see, with the same filters as the bottle list.
func (d *DistilleryServer) ShowDistillery(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	distillery, err := d.distilleries.GetDistilleryByID(r.Context(), id)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	owner, err := activeOwner(r.Context(), d.users, distillery.UserID)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	bottles, err := d.bottles.GetBottlesForDistillery(r.Context(), distillery.ID)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	if err := r.ParseForm(); err != nil {
		d.fail(w, r, ErrBadRequest)

		return
	}

	result := listing.Assemble(auth.Viewer(r.Context()), bottles, listing.ParseFilter(r.Form), d.picker)

	data := producerData[*model.Distillery]{
		Producer: distillery,
		Owner:    owner,
		IsOwn:    policy.CanModify(auth.Viewer(r.Context()), distillery),
		Kind:     distilleryKind,
		List: BottleList{
			Result: result,
			Action: fmt.Sprintf("/distillery/%d", distillery.ID),
			Thumbs: thumbnails(d.images, result.Bottles),
		},
	}

	d.render(w, r, http.StatusOK, "producer.html", Page{Title: distillery.Name, Data: data})
}

// AddDistilleryPage accepts the form fields as query parameters so lookup
// results can prefill it.
func (d *DistilleryServer) AddDistilleryPage(w http.ResponseWriter, r *http.Request) {
	form, _ := readProducerForm(r.URL.Query())

	d.renderProducerForm(w, r, http.StatusOK, "Add distillery",
		producerFormData{Form: form, Action: "/distillery/add", Kind: distilleryKind}, nil)
}

func (d *DistilleryServer) AddDistillery(w http.ResponseWriter, r *http.Request) {
	viewer := auth.Viewer(r.Context())

	form, errs, err := d.readForm(r)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	if errs != nil {
		d.renderProducerForm(w, r, http.StatusUnprocessableEntity, "Add distillery",
			producerFormData{Form: form, Action: "/distillery/add", Kind: distilleryKind}, errs)

		return
	}

	created, err := d.distilleries.AddDistillery(r.Context(), form.distillery(viewer.ID))
	if err != nil {
		d.fail(w, r, err)

		return
	}

	d.redirect(w, r, fmt.Sprintf("/distillery/%d", created.ID), fmt.Sprintf("Added %s.", created.Name))
}

func (d *DistilleryServer) readForm(r *http.Request) (producerForm, validation.FieldErrors, error) {
	if err := r.ParseForm(); err != nil {
		return producerForm{}, nil, ErrBadRequest
	}

	form, reader := readProducerForm(r.PostForm)

	return form, merge(reader.errs, d.validator.Validate(form)), nil
}

// loadOwned fetches a distillery the viewer may change. A missing
// distillery is refused exactly like someone else's.
func (d *DistilleryServer) loadOwned(r *http.Request) (*model.Distillery, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, policy.ErrIssue
	}

	distillery, err := d.distilleries.GetDistilleryByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, policy.ErrIssue
	}

	if err != nil {
		return nil, err
	}

	if err := policy.AuthorizeModify(auth.Viewer(r.Context()), distillery); err != nil {
		return nil, err
	}

	return distillery, nil
}

func (d *DistilleryServer) EditDistilleryPage(w http.ResponseWriter, r *http.Request) {
	distillery, err := d.loadOwned(r)
	if err != nil {
		d.refuseOrFail(w, r, err)

		return
	}

	data := producerFormData{
		Form:   producerFormFromDistillery(distillery),
		Action: fmt.Sprintf("/distillery/edit/%d", distillery.ID),
		Kind:   distilleryKind,
	}

	d.renderProducerForm(w, r, http.StatusOK, "Edit "+distillery.Name, data, nil)
}

func (d *DistilleryServer) EditDistillery(w http.ResponseWriter, r *http.Request) {
	distillery, err := d.loadOwned(r)
	if err != nil {
		d.refuseOrFail(w, r, err)

		return
	}

	form, errs, err := d.readForm(r)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	if errs != nil {
		data := producerFormData{Form: form, Action: fmt.Sprintf("/distillery/edit/%d", distillery.ID), Kind: distilleryKind}
		d.renderProducerForm(w, r, http.StatusUnprocessableEntity, "Edit "+distillery.Name, data, errs)

		return
	}

	form.applyDistillery(distillery)

	if err := d.distilleries.UpdateDistillery(r.Context(), distillery); err != nil {
		d.fail(w, r, err)

		return
	}

	d.redirect(w, r, fmt.Sprintf("/distillery/%d", distillery.ID), fmt.Sprintf("Updated %s.", distillery.Name))
}

// DeleteDistillery refuses while any bottle still credits the distillery.
func (d *DistilleryServer) DeleteDistillery(w http.ResponseWriter, r *http.Request) {
	distillery, err := d.loadOwned(r)
	if err != nil {
		d.refuseOrFail(w, r, err)

		return
	}

	references, err := d.distilleries.CountDistilleryBottles(r.Context(), distillery.ID)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	viewer := auth.Viewer(r.Context())
	if err := policy.AuthorizeDelete(viewer, distillery, references); err != nil {
		d.refuseOrFail(w, r, err)

		return
	}

	if err := d.distilleries.DeleteDistillery(r.Context(), distillery.ID); err != nil {
		d.fail(w, r, err)

		return
	}

	d.redirect(w, r, "/"+viewer.Username+"/distilleries", fmt.Sprintf("Deleted %s.", distillery.Name))
}

// AddDefaults seeds the viewer's account with the starter distilleries.
func (d *DistilleryServer) AddDefaults(w http.ResponseWriter, r *http.Request) {
	viewer := auth.Viewer(r.Context())

	added, err := defaults.Seed(r.Context(), d.distilleries, viewer)
	if err != nil {
		d.fail(w, r, err)

		return
	}

	d.logger.Info("default distilleries added", zap.Uint("user_id", viewer.ID), zap.Int("added", added))
	d.redirect(w, r, "/"+viewer.Username+"/distilleries", fmt.Sprintf("Added %d distilleries.", added))
}

type lookupResult struct {
	Distillery model.Distillery
	AddURL     string
}

type lookupData struct {
	Query   string
	Enabled bool
	Results []lookupResult
}

// Lookup searches the configured directory site. Nothing is saved; each
// result links to a prefilled add form.
func (d *DistilleryServer) Lookup(w http.ResponseWriter, r *http.Request) {
	data := lookupData{Query: r.URL.Query().Get("q"), Enabled: d.lookup != nil}

	if data.Enabled && data.Query != "" {
		found, err := d.lookup.FindDistillery(data.Query)
		if err != nil {
			d.logger.Warn("distillery lookup incomplete", zap.String("query", data.Query), zap.Error(err))
		}

		for _, distillery := range found {
			data.Results = append(data.Results, lookupResult{Distillery: distillery, AddURL: prefillURL(distillery)})
		}
	}

	d.render(w, r, http.StatusOK, "lookup.html", Page{Title: "Find a distillery", Data: data})
}

func prefillURL(distillery model.Distillery) string {
	query := url.Values{}
	query.Set("name", distillery.Name)
	query.Set("description", distillery.Description)
	query.Set("region_1", distillery.Region1)
	query.Set("region_2", distillery.Region2)
	query.Set("url", formatString(distillery.URL))

	return "/distillery/add?" + query.Encode()
}
