package services

import (
	"encoding/json"
	"mime/multipart"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baldimario/promptly/internal/models"
	"github.com/baldimario/promptly/pkg/format"
)

// Sort orders accepted by PromptService.List.
const (
	SortRecent   = "recent"
	SortTrending = "trending"
)

// ListOptions filters, sorts and paginates a prompt listing. Zero values
// mean "no filter".
type ListOptions struct {
	CurrentUserID uint   // viewer, for the isSaved flag
	UserID        uint   // restrict to one author
	AuthorIDs     []uint // restrict to a set of authors (feed)
	CategoryID    uint
	SavedBy       uint // restrict to prompts saved by this user
	Query         string
	Sort          string
	Page          int
	PageSize      int
}

// PromptService assembles prompts with their relations formatted for display.
type PromptService interface {
	GetByID(id, currentUserID uint) (*PromptView, error)
	List(opts ListOptions) (*PromptList, error)
	Create(userID uint, req *models.CreatePromptRequest, files []*multipart.FileHeader) (*PromptView, error)
	Update(id, userID uint, req *models.UpdatePromptRequest) (*PromptView, error)
	Delete(id, userID uint) error
}

type promptService struct {
	db     *gorm.DB
	images *ImageService
	logger *zap.SugaredLogger
}

// NewPromptService creates a new PromptService backed by the given database.
func NewPromptService(db *gorm.DB, images *ImageService, logger *zap.SugaredLogger) PromptService {
	return &promptService{db: db, images: images, logger: logger}
}

// GetByID fetches a single prompt with all relations formatted for display.
// Returns nil, nil when the prompt does not exist; the caller decides how
// to render the empty state.
func (s *promptService) GetByID(id, currentUserID uint) (*PromptView, error) {
	var prompt models.Prompt
	err := s.db.
		Preload("User").
		Preload("Category").
		Preload("Ratings").
		Preload("Comments", func(db *gorm.DB) *gorm.DB { return db.Order("comments.created_at DESC") }).
		Preload("Comments.User").
		First(&prompt, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find prompt")
	}

	isSaved, err := s.isSavedBy(currentUserID, id)
	if err != nil {
		return nil, err
	}

	view := s.buildView(&prompt, isSaved)
	view.Comments = make([]CommentView, 0, len(prompt.Comments))
	for i := range prompt.Comments {
		view.Comments = append(view.Comments, commentView(&prompt.Comments[i]))
	}
	return &view, nil
}

// List returns a filtered, sorted, paginated page of prompts, each row
// enriched like GetByID minus the comment list.
func (s *promptService) List(opts ListOptions) (*PromptList, error) {
	page, pageSize := normalizePage(opts.Page, opts.PageSize)

	query := s.db.Model(&models.Prompt{})
	if opts.UserID != 0 {
		query = query.Where("user_id = ?", opts.UserID)
	}
	if len(opts.AuthorIDs) > 0 {
		query = query.Where("user_id IN ?", opts.AuthorIDs)
	}
	if opts.CategoryID != 0 {
		query = query.Where("category_id = ?", opts.CategoryID)
	}
	if opts.SavedBy != 0 {
		query = query.Where("id IN (?)",
			s.db.Model(&models.SavedPrompt{}).Select("prompt_id").Where("user_id = ?", opts.SavedBy))
	}
	if opts.Query != "" {
		pattern := "%" + opts.Query + "%"
		query = query.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}

	// Total is computed on the filtered set, independent of the page window.
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, errors.Wrap(err, "count prompts")
	}

	if opts.Sort == SortTrending {
		// Popularity proxy: number of ratings received, not the rating value.
		query = query.Order("(SELECT COUNT(*) FROM ratings WHERE ratings.prompt_id = prompts.id) DESC")
	} else {
		query = query.Order("created_at DESC")
	}

	var prompts []models.Prompt
	if err := query.
		Preload("User").
		Preload("Category").
		Preload("Ratings").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&prompts).Error; err != nil {
		return nil, errors.Wrap(err, "list prompts")
	}

	savedIDs, err := s.savedIDSet(opts.CurrentUserID)
	if err != nil {
		return nil, err
	}

	views := make([]PromptView, 0, len(prompts))
	for i := range prompts {
		views = append(views, s.buildView(&prompts[i], savedIDs[prompts[i].ID]))
	}

	return &PromptList{
		Prompts:    views,
		Pagination: NewPagination(page, pageSize, total),
	}, nil
}

// Create inserts a new prompt and persists its uploaded images. The row
// insert and the primary-image patch share one transaction; file
// persistence failure is logged and the prompt kept.
func (s *promptService) Create(userID uint, req *models.CreatePromptRequest, files []*multipart.FileHeader) (*PromptView, error) {
	prompt := &models.Prompt{
		Title:          req.Title,
		Description:    req.Description,
		PromptText:     req.PromptText,
		ExampleOutputs: req.ExampleOutputs,
		SuggestedModel: req.SuggestedModel,
		Tags:           encodeTags(req.Tags),
		CategoryID:     req.CategoryID,
		UserID:         userID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prompt).Error; err != nil {
			return errors.Wrap(err, "create prompt")
		}

		imageURLs, err := s.images.SaveUploadedFiles(files, prompt.ID)
		if err != nil {
			s.logger.Warnw("failed to save prompt images", "prompt_id", prompt.ID, "error", err)
		}
		if len(imageURLs) > 0 {
			// First uploaded image becomes the main prompt image.
			if err := tx.Model(prompt).Update("image", imageURLs[0]).Error; err != nil {
				return errors.Wrap(err, "update prompt image")
			}
			prompt.Image = imageURLs[0]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(prompt.ID, userID)
}

// Update overwrites a prompt's mutable fields. Only the owner may update.
func (s *promptService) Update(id, userID uint, req *models.UpdatePromptRequest) (*PromptView, error) {
	var prompt models.Prompt
	if err := s.db.First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, errors.Wrap(err, "find prompt")
	}
	if prompt.UserID != userID {
		return nil, ErrForbidden
	}

	prompt.Title = req.Title
	prompt.Description = req.Description
	prompt.PromptText = req.PromptText
	prompt.ExampleOutputs = req.ExampleOutputs
	prompt.SuggestedModel = req.SuggestedModel
	prompt.CategoryID = req.CategoryID
	prompt.Tags = encodeTags(req.Tags)
	if req.Image != "" {
		prompt.Image = req.Image
	}

	if err := s.db.Save(&prompt).Error; err != nil {
		return nil, errors.Wrap(err, "update prompt")
	}
	return s.GetByID(prompt.ID, userID)
}

// Delete removes a prompt and its dependent rows. Only the owner may delete.
func (s *promptService) Delete(id, userID uint) error {
	var prompt models.Prompt
	if err := s.db.First(&prompt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPromptNotFound
		}
		return errors.Wrap(err, "find prompt")
	}
	if prompt.UserID != userID {
		return ErrForbidden
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("prompt_id = ?", id).Delete(&models.Rating{}).Error; err != nil {
			return errors.Wrap(err, "delete ratings")
		}
		if err := tx.Where("prompt_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return errors.Wrap(err, "delete comments")
		}
		if err := tx.Where("prompt_id = ?", id).Delete(&models.SavedPrompt{}).Error; err != nil {
			return errors.Wrap(err, "delete saved prompts")
		}
		return errors.Wrap(tx.Delete(&prompt).Error, "delete prompt")
	})
}

// buildView maps a loaded prompt row to its display shape: parsed tags,
// rating aggregate, avatar fallback and image resolution (upload directory
// by id, then the stored image, then a generated placeholder).
func (s *promptService) buildView(p *models.Prompt, isSaved bool) PromptView {
	tags := format.ParseTags(p.Tags)

	ratings := make([]format.RatingValue, len(p.Ratings))
	for i, r := range p.Ratings {
		ratings[i] = format.RatingValue{Rating: r.Rating}
	}

	userName := p.User.Name
	if userName == "" {
		userName = "Unknown"
	}

	imageURLs := s.images.ListPromptImages(p.ID)
	if len(imageURLs) == 0 && p.Image != "" {
		imageURLs = []string{p.Image}
	}
	mainImage := p.Image
	if mainImage == "" && len(imageURLs) > 0 {
		mainImage = imageURLs[0]
	}
	mainImage = format.PromptImageURL(p.Title, mainImage, userName, tags)
	if len(imageURLs) == 0 {
		imageURLs = []string{mainImage}
	}

	view := PromptView{
		ID:             p.ID,
		Title:          p.Title,
		Description:    p.Description,
		PromptText:     p.PromptText,
		ExampleOutputs: p.ExampleOutputs,
		SuggestedModel: p.SuggestedModel,
		Image:          mainImage,
		ImageURLs:      imageURLs,
		UserID:         p.UserID,
		UserName:       userName,
		UserImage:      format.AvatarURL(userName, p.User.Image),
		CreatedAt:      p.CreatedAt,
		Tags:           tags,
		CategoryID:     p.CategoryID,
		AverageRating:  format.AverageRating(ratings),
		NumRatings:     len(ratings),
		IsSaved:        isSaved,
	}
	if p.Category != nil {
		view.CategoryName = p.Category.Name
		view.CategoryImage = p.Category.Image
	}
	return view
}

func (s *promptService) isSavedBy(userID, promptID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	var count int64
	err := s.db.Model(&models.SavedPrompt{}).
		Where("user_id = ? AND prompt_id = ?", userID, promptID).
		Count(&count).Error
	return count > 0, errors.Wrap(err, "check saved")
}

func (s *promptService) savedIDSet(userID uint) (map[uint]bool, error) {
	set := make(map[uint]bool)
	if userID == 0 {
		return set, nil
	}
	var ids []uint
	if err := s.db.Model(&models.SavedPrompt{}).Where("user_id = ?", userID).Pluck("prompt_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "list saved ids")
	}
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return ""
	}
	return string(encoded)
}
