package delivery

import (
	"log/slog"
	"net/http"

	authdelivery "chat-backend/internal/auth/delivery"
	authdomain "chat-backend/internal/auth/domain"
	authdto "chat-backend/internal/auth/dto"
	"chat-backend/internal/user/dto"
	"chat-backend/internal/user/usecase"
	"chat-backend/pkg/apperror"
	"chat-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

// UploadConfig tells the handler where to stage incoming images.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// ProfileHandler serves the caller's own profile
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	uploads        UploadConfig
	verbose        bool
	log            *slog.Logger
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase, uploads UploadConfig, verbose bool, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		uploads:        uploads,
		verbose:        verbose,
		log:            log,
	}
}

// GetProfile returns the caller's profile
// GET /api/users/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	current, ok := authdelivery.CurrentUser(c)
	if !ok {
		apperror.Respond(c, authdomain.ErrNoToken, h.verbose)
		return
	}

	user, err := h.profileUsecase.GetProfile(c.Request.Context(), current.ID)
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}
	respond(c, "Profile retrieved successfully", user)
}

// UpdateProfile edits name, email and picture
// PUT /api/users/profile (multipart: fullName, email, image)
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	current, ok := authdelivery.CurrentUser(c)
	if !ok {
		apperror.Respond(c, authdomain.ErrNoToken, h.verbose)
		return
	}

	file, err := upload.Save(c, "image", h.uploads.Dir, h.uploads.MaxBytes)
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}
	defer func() {
		if err := file.Remove(); err != nil {
			h.log.WarnContext(c.Request.Context(), "remove staged upload", "path", file.Path, "error", err)
		}
	}()

	req := &dto.UpdateProfileRequest{
		FullName: c.PostForm("fullName"),
		Email:    c.PostForm("email"),
	}
	if file != nil {
		req.ImagePath = file.Path
	}

	user, err := h.profileUsecase.UpdateProfile(c.Request.Context(), current.ID, req)
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}
	respond(c, "Profile updated successfully", user)
}

func respond(c *gin.Context, message string, user *authdomain.User) {
	public := user.Public()
	c.JSON(http.StatusOK, authdto.UserResponse{
		Success: true,
		Message: message,
		Data:    &public,
	})
}
