package domain

import (
	"time"

	"github.com/SscSPs/content_platform_app/internal/apperrors"
)

// ArticleType is the discriminator of the article union.
type ArticleType string

const (
	ArticleTypeNews              ArticleType = "news"
	ArticleTypeVideo             ArticleType = "video"
	ArticleTypePhotoGallery      ArticleType = "photo_gallery"
	ArticleTypeLegalDocument     ArticleType = "legal_document"
	ArticleTypeStaffProfile      ArticleType = "staff_profile"
	ArticleTypeJobPosting        ArticleType = "job_posting"
	ArticleTypeProcedureDocument ArticleType = "procedure_document"
	ArticleTypeDownloadableFiles ArticleType = "downloadable_files"
	ArticleTypePodcast           ArticleType = "podcast"
	ArticleTypeEventInformation  ArticleType = "event_information"
	ArticleTypeInfographic       ArticleType = "infographic"
	ArticleTypeTravelDestination ArticleType = "travel_destination"
	ArticleTypePartnerSponsor    ArticleType = "partner_sponsor"
	ArticleTypePDFDocument       ArticleType = "pdf_document"
)

// ArticleVariant holds the fields that exist only for one article type.
// The unexported method closes the set to the types in this file.
type ArticleVariant interface {
	Type() ArticleType
	isArticleVariant()
}

// variantFactories is initialised once and only read afterwards.
var variantFactories = map[ArticleType]func() ArticleVariant{
	ArticleTypeNews:              func() ArticleVariant { return &NewsDetails{} },
	ArticleTypeVideo:             func() ArticleVariant { return &VideoDetails{} },
	ArticleTypePhotoGallery:      func() ArticleVariant { return &PhotoGalleryDetails{} },
	ArticleTypeLegalDocument:     func() ArticleVariant { return &LegalDocumentDetails{} },
	ArticleTypeStaffProfile:      func() ArticleVariant { return &StaffProfileDetails{} },
	ArticleTypeJobPosting:        func() ArticleVariant { return &JobPostingDetails{} },
	ArticleTypeProcedureDocument: func() ArticleVariant { return &ProcedureDocumentDetails{} },
	ArticleTypeDownloadableFiles: func() ArticleVariant { return &DownloadableFilesDetails{} },
	ArticleTypePodcast:           func() ArticleVariant { return &PodcastDetails{} },
	ArticleTypeEventInformation:  func() ArticleVariant { return &EventInformationDetails{} },
	ArticleTypeInfographic:       func() ArticleVariant { return &InfographicDetails{} },
	ArticleTypeTravelDestination: func() ArticleVariant { return &TravelDestinationDetails{} },
	ArticleTypePartnerSponsor:    func() ArticleVariant { return &PartnerSponsorDetails{} },
	ArticleTypePDFDocument:       func() ArticleVariant { return &PDFDocumentDetails{} },
}

var allArticleTypes = []ArticleType{
	ArticleTypeNews, ArticleTypeVideo, ArticleTypePhotoGallery, ArticleTypeLegalDocument,
	ArticleTypeStaffProfile, ArticleTypeJobPosting, ArticleTypeProcedureDocument, ArticleTypeDownloadableFiles,
	ArticleTypePodcast, ArticleTypeEventInformation, ArticleTypeInfographic, ArticleTypeTravelDestination,
	ArticleTypePartnerSponsor, ArticleTypePDFDocument,
}

// AllArticleTypes returns the 14 known types in display order.
func AllArticleTypes() []ArticleType {
	out := make([]ArticleType, len(allArticleTypes))
	copy(out, allArticleTypes)
	return out
}

// IsValid reports whether t is one of the known types.
func (t ArticleType) IsValid() bool {
	_, ok := variantFactories[t]
	return ok
}

// variantChecker is implemented by variants with rules spanning several fields.
type variantChecker interface {
	check() error
}

type NewsDetails struct {
	Source   string `json:"source,omitempty" validate:"max=200"`
	Location string `json:"location,omitempty" validate:"max=200"`
	Breaking bool   `json:"breaking,omitempty"`
}

type VideoDetails struct {
	VideoURL      string `json:"videoUrl" validate:"required,url"`
	VideoProvider string `json:"videoProvider,omitempty" validate:"omitempty,oneof=youtube vimeo self-hosted"`
	Duration      int    `json:"duration,omitempty" validate:"gte=0"`
	Thumbnail     string `json:"thumbnail,omitempty" validate:"omitempty,url"`
	Captions      string `json:"captions,omitempty"`
}

type GalleryImage struct {
	URL     string `json:"url" validate:"required,url"`
	Caption string `json:"caption,omitempty"`
	Alt     string `json:"alt" validate:"required"`
	Order   int    `json:"order" validate:"gte=0"`
}

type PhotoGalleryDetails struct {
	Images []GalleryImage `json:"images" validate:"required,min=1,dive"`
}

type LegalDocumentDetails struct {
	DocumentType  string    `json:"documentType" validate:"required,oneof=terms privacy disclaimer other"`
	Version       string    `json:"version" validate:"required"`
	EffectiveDate time.Time `json:"effectiveDate" validate:"required"`
	DocumentURL   string    `json:"documentUrl,omitempty" validate:"omitempty,url"`
}

type StaffProfileDetails struct {
	FirstName    string            `json:"firstName" validate:"required"`
	LastName     string            `json:"lastName" validate:"required"`
	Position     string            `json:"position" validate:"required"`
	Department   string            `json:"department" validate:"required"`
	Email        string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string            `json:"phone,omitempty"`
	Bio          string            `json:"bio" validate:"required"`
	ProfileImage string            `json:"profileImage,omitempty" validate:"omitempty,url"`
	SocialLinks  map[string]string `json:"socialLinks,omitempty" validate:"omitempty,dive,url"`
}

type JobPostingDetails struct {
	Position            string     `json:"position" validate:"required"`
	Department          string     `json:"department" validate:"required"`
	Location            string     `json:"location" validate:"required"`
	EmploymentType      string     `json:"employmentType" validate:"required,oneof=full-time part-time contract internship"`
	SalaryRange         string     `json:"salaryRange,omitempty"`
	Requirements        []string   `json:"requirements" validate:"required,min=1,dive,required"`
	Responsibilities    []string   `json:"responsibilities" validate:"required,min=1,dive,required"`
	ApplicationDeadline *time.Time `json:"applicationDeadline,omitempty"`
	ApplicationURL      string     `json:"applicationUrl,omitempty" validate:"omitempty,url"`
}

type ProcedureStep struct {
	Order       int      `json:"order" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Warnings    []string `json:"warnings,omitempty"`
}

type ProcedureDocumentDetails struct {
	ProcedureID      string          `json:"procedureId" validate:"required"`
	Version          string          `json:"version" validate:"required"`
	Steps            []ProcedureStep `json:"steps" validate:"required,min=1,dive"`
	RelatedDocuments []string        `json:"relatedDocuments,omitempty"`
}

func (d *ProcedureDocumentDetails) check() error {
	seen := make(map[int]bool, len(d.Steps))
	for _, s := range d.Steps {
		if seen[s.Order] {
			return apperrors.NewValidationFailedError("steps must have distinct order values")
		}
		seen[s.Order] = true
	}
	return nil
}

type DownloadableFile struct {
	Name        string `json:"name" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	Size        int64  `json:"size" validate:"required,gt=0"`
	Format      string `json:"format" validate:"required"`
	Description string `json:"description,omitempty"`
}

type DownloadableFilesDetails struct {
	Files []DownloadableFile `json:"files" validate:"required,min=1,dive"`
}

type PodcastDetails struct {
	AudioURL      string   `json:"audioUrl" validate:"required,url"`
	Duration      int      `json:"duration" validate:"required,gt=0"`
	EpisodeNumber *int     `json:"episodeNumber,omitempty" validate:"omitempty,gt=0"`
	SeasonNumber  *int     `json:"seasonNumber,omitempty" validate:"omitempty,gt=0"`
	Hosts         []string `json:"hosts,omitempty"`
	Guests        []string `json:"guests,omitempty"`
	Transcript    string   `json:"transcript,omitempty"`
}

type EventInformationDetails struct {
	EventDate            time.Time  `json:"eventDate" validate:"required"`
	EventEndDate         *time.Time `json:"eventEndDate,omitempty"`
	Location             string     `json:"location" validate:"required"`
	Venue                string     `json:"venue,omitempty"`
	Organizer            string     `json:"organizer,omitempty"`
	RegistrationURL      string     `json:"registrationUrl,omitempty" validate:"omitempty,url"`
	Capacity             *int       `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
}

func (d *EventInformationDetails) check() error {
	if d.EventEndDate != nil && d.EventEndDate.Before(d.EventDate) {
		return apperrors.NewValidationFailedError("eventEndDate must not be before eventDate")
	}
	if d.RegistrationDeadline != nil && d.RegistrationDeadline.After(d.EventDate) {
		return apperrors.NewValidationFailedError("registrationDeadline must not be after eventDate")
	}
	return nil
}

type InfographicDetails struct {
	InfographicURL string `json:"infographicUrl" validate:"required,url"`
	DownloadURL    string `json:"downloadUrl,omitempty" validate:"omitempty,url"`
	ImageWidth     int    `json:"imageWidth,omitempty" validate:"gte=0"`
	ImageHeight    int    `json:"imageHeight,omitempty" validate:"gte=0"`
}

type Coordinates struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type TravelDestinationDetails struct {
	Destination     string       `json:"destination" validate:"required"`
	Country         string       `json:"country" validate:"required"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	BestTimeToVisit string       `json:"bestTimeToVisit,omitempty"`
	Attractions     []string     `json:"attractions" validate:"required,min=1,dive,required"`
	Accommodations  []string     `json:"accommodations,omitempty"`
	Activities      []string     `json:"activities,omitempty"`
}

type PartnerSponsorDetails struct {
	CompanyName      string `json:"companyName" validate:"required"`
	Logo             string `json:"logo,omitempty" validate:"omitempty,url"`
	Website          string `json:"website,omitempty" validate:"omitempty,url"`
	PartnershipType  string `json:"partnershipType" validate:"required,oneof=partner sponsor"`
	SponsorshipLevel string `json:"sponsorshipLevel,omitempty" validate:"omitempty,oneof=platinum gold silver bronze"`
	Description      string `json:"description" validate:"required"`
	ContactEmail     string `json:"contactEmail,omitempty" validate:"omitempty,email"`
}

type PDFDocumentDetails struct {
	PDFURL        string `json:"pdfUrl" validate:"required,url"`
	PageCount     int    `json:"pageCount,omitempty" validate:"gte=0"`
	FileSize      int64  `json:"fileSize" validate:"required,gt=0"`
	AllowDownload bool   `json:"allowDownload"`
}

func (*NewsDetails) Type() ArticleType { return ArticleTypeNews }
func (*VideoDetails) Type() ArticleType { return ArticleTypeVideo }
func (*PhotoGalleryDetails) Type() ArticleType { return ArticleTypePhotoGallery }
func (*LegalDocumentDetails) Type() ArticleType { return ArticleTypeLegalDocument }
func (*StaffProfileDetails) Type() ArticleType { return ArticleTypeStaffProfile }
func (*JobPostingDetails) Type() ArticleType { return ArticleTypeJobPosting }
func (*ProcedureDocumentDetails) Type() ArticleType { return ArticleTypeProcedureDocument }
func (*DownloadableFilesDetails) Type() ArticleType { return ArticleTypeDownloadableFiles }
func (*PodcastDetails) Type() ArticleType { return ArticleTypePodcast }
func (*EventInformationDetails) Type() ArticleType { return ArticleTypeEventInformation }
func (*InfographicDetails) Type() ArticleType { return ArticleTypeInfographic }
func (*TravelDestinationDetails) Type() ArticleType { return ArticleTypeTravelDestination }
func (*PartnerSponsorDetails) Type() ArticleType { return ArticleTypePartnerSponsor }
func (*PDFDocumentDetails) Type() ArticleType { return ArticleTypePDFDocument }

func (*NewsDetails) isArticleVariant() {}
func (*VideoDetails) isArticleVariant() {}
func (*PhotoGalleryDetails) isArticleVariant() {}
func (*LegalDocumentDetails) isArticleVariant() {}
func (*StaffProfileDetails) isArticleVariant() {}
func (*JobPostingDetails) isArticleVariant() {}
func (*ProcedureDocumentDetails) isArticleVariant() {}
func (*DownloadableFilesDetails) isArticleVariant() {}
func (*PodcastDetails) isArticleVariant() {}
func (*EventInformationDetails) isArticleVariant() {}
func (*InfographicDetails) isArticleVariant() {}
func (*TravelDestinationDetails) isArticleVariant() {}
func (*PartnerSponsorDetails) isArticleVariant() {}
func (*PDFDocumentDetails) isArticleVariant() {}
