package server

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.openly.dev/pointy"

	"droscher.com/MyWhiskies/pkg/model"
	"droscher.com/MyWhiskies/pkg/validation"
)

// formReader pulls typed values out of a submitted form. Values that do
// not parse are recorded as field errors and read as empty.
type formReader struct {
	values url.Values
	errs   validation.FieldErrors
}

func newFormReader(values url.Values) *formReader {
	return &formReader{values: values, errs: validation.FieldErrors{}}
}

func (f *formReader) String(name string) string {
	return strings.TrimSpace(f.values.Get(name))
}

func (f *formReader) Bool(name string) bool {
	switch strings.ToLower(f.String(name)) {
	case "y", "yes", "on", "true", "1":
		return true
	default:
		return false
	}
}

func (f *formReader) Float(name string) *float64 {
	raw := f.String(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		f.errs.Add(name, "must be a number")

		return nil
	}

	return pointy.Float64(value)
}

func (f *formReader) Int(name string) *int {
	raw := f.String(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		f.errs.Add(name, "must be a whole number")

		return nil
	}

	return pointy.Int(value)
}

func (f *formReader) Uint(name string) uint {
	raw := f.String(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		f.errs.Add(name, "is invalid")

		return 0
	}

	return uint(value)
}

func (f *formReader) Date(name string) *time.Time {
	raw := f.String(name)
	if raw == "" {
		return nil
	}

	value, err := time.Parse(dateLayout, raw)
	if err != nil {
		f.errs.Add(name, "must be a date (YYYY-MM-DD)")

		return nil
	}

	return &value
}

func (f *formReader) Uints(name string) []uint {
	var result []uint

	for _, raw := range f.values[name] {
		value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
		if err != nil || value == 0 {
			f.errs.Add(name, "is invalid")

			continue
		}

		result = append(result, uint(value))
	}

	return result
}

func (f *formReader) Ints(name string) []int {
	var result []int

	for _, raw := range f.values[name] {
		value, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			f.errs.Add(name, "is invalid")

			continue
		}

		result = append(result, value)
	}

	return result
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return pointy.String(value)
}

// merge adds validator messages to the parse errors; parse errors win.
func merge(parsed validation.FieldErrors, validated validation.FieldErrors) validation.FieldErrors {
	for field, message := range validated {
		parsed.Add(field, message)
	}

	if len(parsed) == 0 {
		return nil
	}

	return parsed
}

type registerForm struct {
	Username        string `form:"username"    validate:"required,min=3,max=32,username"`
	Email           string `form:"email"       validate:"required,email,max=255"`
	Password        string `form:"password"    validate:"required,min=12,max=64,password"`
	ConfirmPassword string `form:"password2"   validate:"required,eqfield=Password"`
	AgreeTerms      bool   `form:"agree_terms" validate:"required"`
}

func readRegisterForm(values url.Values) (registerForm, *formReader) {
	reader := newFormReader(values)

	return registerForm{
		Username:        reader.String("username"),
		Email:           reader.String("email"),
		Password:        values.Get("password"),
		ConfirmPassword: values.Get("password2"),
		AgreeTerms:      reader.Bool("agree_terms"),
	}, reader
}

type passwordForm struct {
	Password        string `form:"password"  validate:"required,min=12,max=64,password"`
	ConfirmPassword string `form:"password2" validate:"required,eqfield=Password"`
}

type emailForm struct {
	Email string `form:"email" validate:"required,email"`
}

// producerForm is the shared shape of the distillery and bottler forms.
type producerForm struct {
	Name        string `form:"name"        validate:"required,max=100"`
	Description string `form:"description" validate:"max=65535"`
	Region1     string `form:"region_1"    validate:"required,max=100"`
	Region2     string `form:"region_2"    validate:"required,max=100"`
	URL         string `form:"url"         validate:"omitempty,url,max=2048"`
}

func readProducerForm(values url.Values) (producerForm, *formReader) {
	reader := newFormReader(values)

	return producerForm{
		Name:        reader.String("name"),
		Description: reader.String("description"),
		Region1:     reader.String("region_1"),
		Region2:     reader.String("region_2"),
		URL:         reader.String("url"),
	}, reader
}

func (p producerForm) distillery(userID uint) model.Distillery {
	distillery := model.Distillery{UserID: userID}
	p.applyDistillery(&distillery)

	return distillery
}

func (p producerForm) applyDistillery(distillery *model.Distillery) {
	distillery.Name = p.Name
	distillery.Description = p.Description
	distillery.Region1 = p.Region1
	distillery.Region2 = p.Region2
	distillery.URL = optional(p.URL)
	distillery.Normalize()
}

func (p producerForm) bottler(userID uint) model.Bottler {
	bottler := model.Bottler{UserID: userID}
	p.applyBottler(&bottler)

	return bottler
}

func (p producerForm) applyBottler(bottler *model.Bottler) {
	bottler.Name = p.Name
	bottler.Description = p.Description
	bottler.Region1 = p.Region1
	bottler.Region2 = p.Region2
	bottler.URL = optional(p.URL)
	bottler.Normalize()
}

func producerFormFromDistillery(distillery *model.Distillery) producerForm {
	return producerForm{
		Name:        distillery.Name,
		Description: distillery.Description,
		Region1:     distillery.Region1,
		Region2:     distillery.Region2,
		URL:         formatString(distillery.URL),
	}
}

func producerFormFromBottler(bottler *model.Bottler) producerForm {
	return producerForm{
		Name:        bottler.Name,
		Description: bottler.Description,
		Region1:     bottler.Region1,
		Region2:     bottler.Region2,
		URL:         formatString(bottler.URL),
	}
}

type bottleForm struct {
	Name          string     `form:"name"           validate:"required,max=100"`
	Type          string     `form:"type"           validate:"required,bottle_type"`
	DistilleryIDs []uint     `form:"distilleries"   validate:"required,min=1"`
	BottlerID     uint       `form:"bottler"`
	ABV           *float64   `form:"abv"            validate:"omitempty,gte=0,lte=100"`
	Size          *int       `form:"size"           validate:"omitempty,gte=0"`
	YearBarrelled *int       `form:"year_barrelled" validate:"omitempty,gte=1700,lte=2100"`
	YearBottled   *int       `form:"year_bottled"   validate:"omitempty,gte=1700,lte=2100"`
	URL           string     `form:"url"            validate:"omitempty,url,max=2048"`
	Description   string     `form:"description"`
	Review        string     `form:"review"`
	Stars         *float64   `form:"stars"          validate:"omitempty,gte=0,lte=5,half_step"`
	Cost          *float64   `form:"cost"           validate:"omitempty,gte=0"`
	DatePurchased *time.Time `form:"date_purchased"`
	DateOpened    *time.Time `form:"date_opened"`
	DateKilled    *time.Time `form:"date_killed"`
	IsPrivate     bool       `form:"is_private"`
	PersonalNote  string     `form:"personal_note"`
	RemoveImages  []int      `form:"remove_images"`
}

func readBottleForm(values url.Values) (bottleForm, *formReader) {
	reader := newFormReader(values)

	form := bottleForm{
		Name:          reader.String("name"),
		Type:          reader.String("type"),
		DistilleryIDs: reader.Uints("distilleries"),
		BottlerID:     reader.Uint("bottler"),
		ABV:           reader.Float("abv"),
		Size:          reader.Int("size"),
		YearBarrelled: reader.Int("year_barrelled"),
		YearBottled:   reader.Int("year_bottled"),
		URL:           reader.String("url"),
		Description:   reader.String("description"),
		Review:        reader.String("review"),
		Stars:         reader.Float("stars"),
		Cost:          reader.Float("cost"),
		DatePurchased: reader.Date("date_purchased"),
		DateOpened:    reader.Date("date_opened"),
		DateKilled:    reader.Date("date_killed"),
		IsPrivate:     reader.Bool("is_private"),
		PersonalNote:  reader.String("personal_note"),
		RemoveImages:  reader.Ints("remove_images"),
	}

	return form, reader
}

func bottleFormFromModel(bottle *model.Bottle) bottleForm {
	form := bottleForm{
		Name:          bottle.Name,
		Type:          string(bottle.Type),
		DistilleryIDs: bottle.DistilleryIDs(),
		ABV:           bottle.ABV,
		Size:          bottle.Size,
		YearBarrelled: bottle.YearBarrelled,
		YearBottled:   bottle.YearBottled,
		URL:           formatString(bottle.URL),
		Description:   bottle.Description,
		Review:        bottle.Review,
		Stars:         bottle.Stars,
		Cost:          bottle.Cost,
		DatePurchased: bottle.DatePurchased,
		DateOpened:    bottle.DateOpened,
		DateKilled:    bottle.DateKilled,
		IsPrivate:     bottle.IsPrivate,
		PersonalNote:  bottle.PersonalNote,
	}

	if bottle.BottlerID != nil {
		form.BottlerID = *bottle.BottlerID
	}

	return form
}

// apply copies the form onto a bottle. Ownership and links are set by the
// caller.
func (b bottleForm) apply(bottle *model.Bottle) {
	bottleType, _ := model.ParseBottleType(b.Type)

	bottle.Name = b.Name
	bottle.Type = bottleType
	bottle.ABV = b.ABV
	bottle.Size = b.Size
	bottle.YearBarrelled = b.YearBarrelled
	bottle.YearBottled = b.YearBottled
	bottle.URL = optional(b.URL)
	bottle.Description = b.Description
	bottle.Review = b.Review
	bottle.Stars = b.Stars
	bottle.Cost = b.Cost
	bottle.DatePurchased = b.DatePurchased
	bottle.DateOpened = b.DateOpened
	bottle.DateKilled = b.DateKilled
	bottle.IsPrivate = b.IsPrivate
	bottle.PersonalNote = b.PersonalNote
	bottle.BottlerID = nil

	if b.BottlerID != 0 {
		bottle.BottlerID = pointy.Uint(b.BottlerID)
	}

	bottle.Normalize()
}
