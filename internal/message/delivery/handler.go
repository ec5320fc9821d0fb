package delivery

import (
	"log/slog"
	"net/http"

	authdelivery "chat-backend/internal/auth/delivery"
	authdomain "chat-backend/internal/auth/domain"
	"chat-backend/internal/message/dto"
	"chat-backend/internal/message/usecase"
	"chat-backend/pkg/apperror"
	"chat-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

// UploadConfig tells the handler where to stage incoming images.
type UploadConfig struct {
	Dir      string
	MaxBytes int64
}

// MessageHandler handles the user directory and direct messages
type MessageHandler struct {
	messageUsecase usecase.MessageUsecase
	uploads        UploadConfig
	verbose        bool
	log            *slog.Logger
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageUsecase usecase.MessageUsecase, uploads UploadConfig, verbose bool, log *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messageUsecase: messageUsecase,
		uploads:        uploads,
		verbose:        verbose,
		log:            log,
	}
}

// GetUsers lists everyone except the caller
// GET /api/message/users?search=
func (h *MessageHandler) GetUsers(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		apperror.Respond(c, authdomain.ErrNoToken, h.verbose)
		return
	}

	users, err := h.messageUsecase.ListUsers(c.Request.Context(), user.ID, c.Query("search"))
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}

	c.JSON(http.StatusOK, dto.UsersResponse{Success: true, Users: users})
}

// GetAllMessages returns the conversation with otherUserId
// GET /api/message/get-all-messages?otherUserId=
func (h *MessageHandler) GetAllMessages(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		apperror.Respond(c, authdomain.ErrNoToken, h.verbose)
		return
	}

	messages, err := h.messageUsecase.Conversation(c.Request.Context(), user.ID, c.Query("otherUserId"))
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}

	c.JSON(http.StatusOK, dto.MessagesResponse{
		Success: true,
		Message: "Messages successfully retrieved",
		Data:    messages,
	})
}

// SendMessage stores a message with optional image
// POST /api/message/send-message (multipart: receiverId, text, image)
func (h *MessageHandler) SendMessage(c *gin.Context) {
	user, ok := authdelivery.CurrentUser(c)
	if !ok {
		apperror.Respond(c, authdomain.ErrNoToken, h.verbose)
		return
	}

	file, err := upload.Save(c, "image", h.uploads.Dir, h.uploads.MaxBytes)
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}
	defer h.removeUpload(c, file)

	req := &dto.SendMessageRequest{
		ReceiverID: c.PostForm("receiverId"),
		Text:       c.PostForm("text"),
	}
	if file != nil {
		req.ImagePath = file.Path
	}

	msg, err := h.messageUsecase.Send(c.Request.Context(), user, req)
	if err != nil {
		apperror.Respond(c, err, h.verbose)
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{
		Success: true,
		Message: "Message sent successfully",
		Data:    msg,
	})
}

func (h *MessageHandler) removeUpload(c *gin.Context, file *upload.File) {
	if err := file.Remove(); err != nil {
		h.log.WarnContext(c.Request.Context(), "remove staged upload", "path", file.Path, "error", err)
	}
}
