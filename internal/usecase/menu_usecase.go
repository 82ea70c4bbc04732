package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tino-ryan/restaurant-app/internal/domain/entities"
	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

var (
	ErrMenuItemNotFound   = errors.New("menu item not found")
	ErrInvalidMenuItem    = errors.New("invalid menu item")
	ErrUploaderNotEnabled = errors.New("image uploader not configured")
)

// NewMenuItemInput is the staff "add dish" form. Image is optional; when set,
// it is pushed to the external image host before the item is persisted.
type NewMenuItemInput struct {
	Name        string
	Price       float64
	Category    string
	Description string
	Allergens   string
	Image       io.Reader
	ImageName   string
}

// IMenuUseCase covers menu management for staff and the customer-facing
// active-menu read.

type IMenuUseCase interface {
	ActiveMenu(ctx context.Context) ([]entities.MenuItem, error)
	FullMenu(ctx context.Context) ([]entities.MenuItem, error)
	AddItem(ctx context.Context, in NewMenuItemInput) (entities.MenuItem, error)
	EditItem(ctx context.Context, id string, fields entities.MenuItemUpdate) (entities.MenuItem, error)
	ArchiveItem(ctx context.Context, id string) (entities.MenuItem, error)
	RestoreItem(ctx context.Context, id string) (entities.MenuItem, error)
}

type MenuUseCase struct {
	repo     interfaces.IMenuRepository
	uploader interfaces.IImageUploader
}

var _ IMenuUseCase = (*MenuUseCase)(nil)

func NewMenuUseCase(repo interfaces.IMenuRepository, uploader interfaces.IImageUploader) *MenuUseCase {
	return &MenuUseCase{repo: repo, uploader: uploader}
}

func (u *MenuUseCase) ActiveMenu(ctx context.Context) ([]entities.MenuItem, error) {
	return u.repo.ListActive(ctx)
}

func (u *MenuUseCase) FullMenu(ctx context.Context) ([]entities.MenuItem, error) {
	return u.repo.ListAll(ctx)
}

func (u *MenuUseCase) AddItem(ctx context.Context, in NewMenuItemInput) (entities.MenuItem, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	if in.Name == "" || in.Category == "" || in.Price <= 0 {
		return entities.MenuItem{}, ErrInvalidMenuItem
	}

	imageURL := ""
	if in.Image != nil {
		if u.uploader == nil {
			return entities.MenuItem{}, ErrUploaderNotEnabled
		}
		url, err := u.uploader.Upload(ctx, in.ImageName, in.Image)
		if err != nil {
			log.Printf("[menu][usecase] image upload failed name=%s err=%v", in.Name, err)
			return entities.MenuItem{}, err
		}
		imageURL = url
	}

	item := entities.MenuItem{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Price:       in.Price,
		Category:    in.Category,
		Description: in.Description,
		Allergens:   in.Allergens,
		ImageURL:    imageURL,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
	return u.repo.Create(ctx, item)
}

func (u *MenuUseCase) EditItem(ctx context.Context, id string, fields entities.MenuItemUpdate) (entities.MenuItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MenuItem{}, ErrMenuItemNotFound
	}
	if fields.Price != nil && *fields.Price <= 0 {
		return entities.MenuItem{}, ErrInvalidMenuItem
	}
	if fields.Name != nil && strings.TrimSpace(*fields.Name) == "" {
		return entities.MenuItem{}, ErrInvalidMenuItem
	}

	updated, err := u.repo.Update(ctx, id, fields)
	if err != nil {
		return entities.MenuItem{}, err
	}
	if updated.ID == "" {
		return entities.MenuItem{}, ErrMenuItemNotFound
	}
	return updated, nil
}

func (u *MenuUseCase) ArchiveItem(ctx context.Context, id string) (entities.MenuItem, error) {
	return u.setActive(ctx, id, false)
}

func (u *MenuUseCase) RestoreItem(ctx context.Context, id string) (entities.MenuItem, error) {
	return u.setActive(ctx, id, true)
}

func (u *MenuUseCase) setActive(ctx context.Context, id string, active bool) (entities.MenuItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.MenuItem{}, ErrMenuItemNotFound
	}
	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.MenuItem{}, err
	}
	if item.ID == "" {
		return entities.MenuItem{}, ErrMenuItemNotFound
	}
	if err := u.repo.SetActive(ctx, id, active); err != nil {
		return entities.MenuItem{}, err
	}
	item.Active = active
	return item, nil
}
