package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/images"
	"droscher.com/MyWhiskies/pkg/listing"
	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/policy"
	"droscher.com/MyWhiskies/pkg/repository"
	"droscher.com/MyWhiskies/pkg/validation"
)

const maxUploadMemory = 32 << 20

type userLookup interface {
	GetUserByID(ctx context.Context, userID uint) (*model.User, error)
	GetUserByName(ctx context.Context, username string) (*model.User, error)
}

type distilleryChoices interface {
	GetDistilleriesByIDs(ctx context.Context, userID uint, distilleryIDs []uint) ([]*model.Distillery, error)
	GetDistilleriesForUser(ctx context.Context, userID uint) ([]*model.Distillery, error)
}

type bottlerChoices interface {
	GetBottlerByID(ctx context.Context, bottlerID uint) (*model.Bottler, error)
	GetBottlersForUser(ctx context.Context, userID uint) ([]*model.Bottler, error)
}

type BottleServer struct {
	*Web
	users        userLookup
	bottles      repository.BottleRepository
	distilleries distilleryChoices
	bottlers     bottlerChoices
	images       *images.Manager
	validator    *validation.Validator
	picker       listing.Picker
}

func NewBottleServer(web *Web, users userLookup, bottles repository.BottleRepository, distilleries distilleryChoices,
	bottlers bottlerChoices, imageManager *images.Manager, validator *validation.Validator, picker listing.Picker,
) *BottleServer {
	return &BottleServer{
		Web: web, users: users, bottles: bottles, distilleries: distilleries, bottlers: bottlers,
		images: imageManager, validator: validator, picker: picker,
	}
}

// collectionOwner resolves the {username} of a collection page. Deleted
// users have no public pages.
func collectionOwner(r *http.Request, users userLookup) (*model.User, error) {
	owner, err := users.GetUserByName(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		return nil, err
	}

	if owner.IsDeleted {
		return nil, repository.ErrNotFound
	}

	return owner, nil
}

// activeOwner loads the owner of a detail page. Deleted owners are not found.
func activeOwner(ctx context.Context, users userLookup, userID uint) (*model.User, error) {
	owner, err := users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if owner.IsDeleted {
		return nil, repository.ErrNotFound
	}

	return owner, nil
}

type homeData struct {
	Owner   *model.User
	IsOwn   bool
	Bottles int
	Killed  int
	Private int
}

func (b *BottleServer) Home(w http.ResponseWriter, r *http.Request) {
	owner, err := collectionOwner(r, b.users)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	viewer := auth.Viewer(r.Context())

	bottles, err := b.bottles.GetBottlesForUser(r.Context(), owner.ID)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	data := homeData{Owner: owner, IsOwn: policy.IsOwnList(viewer, owner)}

	for _, bottle := range policy.VisibleBottles(viewer, bottles) {
		data.Bottles++

		if bottle.IsKilled() {
			data.Killed++
		}

		if bottle.IsPrivate {
			data.Private++
		}
	}

	b.render(w, r, http.StatusOK, "home.html", Page{Title: owner.Username, Data: data})
}

// BottleList is what list pages render: the assembled bottles plus the
// first picture of each.
type BottleList struct {
	listing.Result
	Action string
	Thumbs map[uint]string
}

func (b *BottleServer) bottleList(r *http.Request, bottles []*model.Bottle, action string) (BottleList, error) {
	if err := r.ParseForm(); err != nil {
		return BottleList{}, ErrBadRequest
	}

	result := listing.Assemble(auth.Viewer(r.Context()), bottles, listing.ParseFilter(r.Form), b.picker)

	return BottleList{Result: result, Action: action, Thumbs: thumbnails(b.images, result.Bottles)}, nil
}

func thumbnails(manager *images.Manager, bottles []*model.Bottle) map[uint]string {
	thumbs := make(map[uint]string, len(bottles))

	for _, bottle := range bottles {
		if urls := manager.URLs(bottle); len(urls) > 0 {
			thumbs[bottle.ID] = urls[0]
		}
	}

	return thumbs
}

type bottlesData struct {
	Owner *model.User
	IsOwn bool
	List  BottleList
}

func (b *BottleServer) ListBottles(w http.ResponseWriter, r *http.Request) {
	owner, err := collectionOwner(r, b.users)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	bottles, err := b.bottles.GetBottlesForUser(r.Context(), owner.ID)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	list, err := b.bottleList(r, bottles, "/"+owner.Username+"/bottles")
	if err != nil {
		b.fail(w, r, err)

		return
	}

	data := bottlesData{Owner: owner, IsOwn: policy.IsOwnList(auth.Viewer(r.Context()), owner), List: list}
	b.render(w, r, http.StatusOK, "bottles.html", Page{Title: owner.Username + "'s bottles", Data: data})
}

type bottleData struct {
	Bottle *model.Bottle
	Owner  *model.User
	IsOwn  bool
	Images []string
}

// ShowBottle answers not found for private bottles of other users.
func (b *BottleServer) ShowBottle(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	bottle, err := b.bottles.GetBottleByID(r.Context(), id)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	viewer := auth.Viewer(r.Context())
	if err := policy.ShowBottle(viewer, bottle); err != nil {
		b.fail(w, r, err)

		return
	}

	owner, err := activeOwner(r.Context(), b.users, bottle.UserID)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	data := bottleData{Bottle: bottle, Owner: owner, IsOwn: policy.CanModify(viewer, bottle), Images: b.images.URLs(bottle)}
	b.render(w, r, http.StatusOK, "bottle.html", Page{Title: bottle.Name, Data: data})
}

type slot struct {
	Sequence int
	URL      string
}

type bottleFormData struct {
	Form         bottleForm
	Action       string
	Distilleries []*model.Distillery
	Bottlers     []*model.Bottler
	Images       []slot
	Free         int
}

func (b *BottleServer) formData(ctx context.Context, viewer *model.User, form bottleForm, action string, bottle *model.Bottle) (bottleFormData, error) {
	distilleries, err := b.distilleries.GetDistilleriesForUser(ctx, viewer.ID)
	if err != nil {
		return bottleFormData{}, err
	}

	bottlers, err := b.bottlers.GetBottlersForUser(ctx, viewer.ID)
	if err != nil {
		return bottleFormData{}, err
	}

	data := bottleFormData{Form: form, Action: action, Distilleries: distilleries, Bottlers: bottlers, Free: model.MaxBottleImages}

	if bottle != nil {
		stored := slices.Clone(bottle.Images)
		slices.SortFunc(stored, func(x, y model.BottleImage) int { return x.Sequence - y.Sequence })

		for _, image := range stored {
			data.Images = append(data.Images, slot{Sequence: image.Sequence, URL: b.images.URL(bottle.ID, image.Sequence)})
		}

		data.Free -= bottle.ImageCount()
	}

	return data, nil
}

func (b *BottleServer) renderForm(w http.ResponseWriter, r *http.Request, status int, title string, data bottleFormData, errs validation.FieldErrors) {
	b.render(w, r, status, "bottle_form.html", Page{Title: title, Errors: errs, Data: data})
}

func (b *BottleServer) AddBottlePage(w http.ResponseWriter, r *http.Request) {
	viewer := auth.Viewer(r.Context())

	data, err := b.formData(r.Context(), viewer, bottleForm{Type: string(model.Bourbon)}, "/bottle/add", nil)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	if len(data.Distilleries) == 0 {
		b.redirect(w, r, "/distillery/add", "Add a distillery before adding your first bottle.")

		return
	}

	b.renderForm(w, r, http.StatusOK, "Add bottle", data, nil)
}

// AddBottle creates the bottle and stores its pictures. If the pictures
// cannot be stored the new bottle is deleted again.
func (b *BottleServer) AddBottle(w http.ResponseWriter, r *http.Request) {
	viewer := auth.Viewer(r.Context())

	form, uploads, errs, err := b.readSubmission(r, viewer, model.MaxBottleImages)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	if errs != nil {
		b.rerender(w, r, viewer, form, "/bottle/add", "Add bottle", nil, errs)

		return
	}

	defer closeUploads(uploads)

	bottle := model.Bottle{UserID: viewer.ID}
	form.apply(&bottle)

	created, err := b.bottles.AddBottle(r.Context(), bottle, form.DistilleryIDs)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	if !b.images.AddImages(r.Context(), created.ID, uploads) {
		b.images.DeleteAll(r.Context(), created.ID)

		if err := b.bottles.DeleteBottle(r.Context(), created.ID); err != nil {
			b.logger.Error("error removing bottle after failed upload", zap.Uint("bottle_id", created.ID), zap.Error(err))
		}

		b.rerender(w, r, viewer, form, "/bottle/add", "Add bottle", nil,
			validation.FieldErrors{"images": "could not be saved, please try again"})

		return
	}

	b.logger.Info("bottle added", zap.Uint("bottle_id", created.ID), zap.Uint("user_id", viewer.ID))
	b.redirect(w, r, fmt.Sprintf("/bottle/%d", created.ID), fmt.Sprintf("Added %s.", created.Name))
}

func (b *BottleServer) rerender(w http.ResponseWriter, r *http.Request, viewer *model.User, form bottleForm,
	action string, title string, bottle *model.Bottle, errs validation.FieldErrors,
) {
	data, err := b.formData(r.Context(), viewer, form, action, bottle)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	b.renderForm(w, r, http.StatusUnprocessableEntity, title, data, errs)
}

// loadOwned fetches a bottle the viewer may change. A missing bottle is
// refused exactly like someone else's.
func (b *BottleServer) loadOwned(r *http.Request) (*model.Bottle, error) {
	id, err := idParam(r)
	if err != nil {
		return nil, policy.ErrIssue
	}

	bottle, err := b.bottles.GetBottleByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, policy.ErrIssue
	}

	if err != nil {
		return nil, err
	}

	if err := policy.AuthorizeModify(auth.Viewer(r.Context()), bottle); err != nil {
		return nil, err
	}

	return bottle, nil
}

func (b *BottleServer) EditBottlePage(w http.ResponseWriter, r *http.Request) {
	bottle, err := b.loadOwned(r)
	if err != nil {
		b.refuseOrFail(w, r, err)

		return
	}

	action := fmt.Sprintf("/bottle/edit/%d", bottle.ID)

	data, err := b.formData(r.Context(), auth.Viewer(r.Context()), bottleFormFromModel(bottle), action, bottle)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	b.renderForm(w, r, http.StatusOK, "Edit "+bottle.Name, data, nil)
}

// EditBottle saves the bottle, then removes and adds pictures. Picture
// failures are reported but do not undo the edit.
func (b *BottleServer) EditBottle(w http.ResponseWriter, r *http.Request) {
	bottle, err := b.loadOwned(r)
	if err != nil {
		b.refuseOrFail(w, r, err)

		return
	}

	viewer := auth.Viewer(r.Context())
	action := fmt.Sprintf("/bottle/edit/%d", bottle.ID)

	form, uploads, errs, err := b.readSubmission(r, viewer, model.MaxBottleImages)
	if err != nil {
		b.fail(w, r, err)

		return
	}

	removing := 0

	for _, image := range bottle.Images {
		if slices.Contains(form.RemoveImages, image.Sequence) {
			removing++
		}
	}

	if errs == nil && len(uploads) > model.MaxBottleImages-bottle.ImageCount()+removing {
		errs = validation.FieldErrors{"images": fmt.Sprintf("a bottle can have at most %d pictures", model.MaxBottleImages)}
	}

	if errs != nil {
		closeUploads(uploads)
		b.rerender(w, r, viewer, form, action, "Edit "+bottle.Name, bottle, errs)

		return
	}

	defer closeUploads(uploads)

	form.apply(bottle)

	if err := b.bottles.UpdateBottle(r.Context(), bottle, form.DistilleryIDs); err != nil {
		b.fail(w, r, err)

		return
	}

	flash := fmt.Sprintf("Updated %s.", bottle.Name)

	if removing > 0 && !b.images.RemoveImages(r.Context(), bottle.ID, form.RemoveImages) {
		flash = "The bottle was saved but there was a problem removing pictures."
	} else if !b.images.AddImages(r.Context(), bottle.ID, uploads) {
		flash = "The bottle was saved but there was a problem saving pictures."
	}

	b.redirect(w, r, fmt.Sprintf("/bottle/%d", bottle.ID), flash)
}

func (b *BottleServer) DeleteBottle(w http.ResponseWriter, r *http.Request) {
	bottle, err := b.loadOwned(r)
	if err != nil {
		b.refuseOrFail(w, r, err)

		return
	}

	viewer := auth.Viewer(r.Context())
	if err := policy.AuthorizeDelete(viewer, bottle, 0); err != nil {
		b.refuseOrFail(w, r, err)

		return
	}

	if err := b.bottles.DeleteBottle(r.Context(), bottle.ID); err != nil {
		b.fail(w, r, err)

		return
	}

	if !b.images.DeleteAll(r.Context(), bottle.ID) {
		b.logger.Warn("bottle images left for cleanup", zap.Uint("bottle_id", bottle.ID))
	}

	b.redirect(w, r, "/"+viewer.Username+"/bottles", fmt.Sprintf("Deleted %s.", bottle.Name))
}

// readSubmission parses and validates the bottle form, checks that the
// chosen distilleries and bottler belong to the viewer and collects up to
// maxUploads pictures.
func (b *BottleServer) readSubmission(r *http.Request, viewer *model.User, maxUploads int) (bottleForm, []io.Reader, validation.FieldErrors, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return bottleForm{}, nil, nil, ErrBadRequest
	}

	form, reader := readBottleForm(r.PostForm)
	form.DistilleryIDs = slices.Compact(slices.Sorted(slices.Values(form.DistilleryIDs)))
	errs := merge(reader.errs, b.validator.Validate(form))

	if errs == nil {
		var err error

		errs, err = b.checkChoices(r.Context(), viewer, form)
		if err != nil {
			return form, nil, nil, err
		}
	}

	var files []*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File["images"]
	}

	if len(files) > maxUploads {
		if errs == nil {
			errs = validation.FieldErrors{}
		}

		errs.Add("images", fmt.Sprintf("a bottle can have at most %d pictures", maxUploads))
	}

	if errs != nil {
		return form, nil, errs, nil
	}

	uploads, err := openUploads(files)
	if err != nil {
		return form, nil, validation.FieldErrors{"images": "could not be read"}, nil
	}

	return form, uploads, nil, nil
}

func (b *BottleServer) checkChoices(ctx context.Context, viewer *model.User, form bottleForm) (validation.FieldErrors, error) {
	errs := validation.FieldErrors{}

	owned, err := b.distilleries.GetDistilleriesByIDs(ctx, viewer.ID, form.DistilleryIDs)
	if err != nil {
		return nil, err
	}

	if len(owned) != len(form.DistilleryIDs) {
		errs.Add("distilleries", "is invalid")
	}

	if form.BottlerID != 0 {
		bottler, err := b.bottlers.GetBottlerByID(ctx, form.BottlerID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}

		if !policy.CanModify(viewer, bottler) {
			errs.Add("bottler", "is invalid")
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}

	return errs, nil
}

func openUploads(files []*multipart.FileHeader) ([]io.Reader, error) {
	uploads := make([]io.Reader, 0, len(files))

	for _, header := range files {
		if header.Size == 0 {
			continue
		}

		file, err := header.Open()
		if err != nil {
			closeUploads(uploads)

			return nil, err
		}

		uploads = append(uploads, file)
	}

	return uploads, nil
}

func closeUploads(uploads []io.Reader) {
	for _, upload := range uploads {
		if closer, ok := upload.(io.Closer); ok {
			_ = closer.Close()
		}
	}
}
