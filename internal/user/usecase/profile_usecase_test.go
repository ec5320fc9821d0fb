package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	authdomain "chat-backend/internal/auth/domain"
	"chat-backend/internal/mocks"
	"chat-backend/internal/user/domain"
	"chat-backend/internal/user/dto"
	"chat-backend/pkg/imagestore"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newProfileFixture(t *testing.T) (ProfileUsecase, *mocks.MockUserRepository, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepository(ctrl)
	images := mocks.NewMockStore(ctrl)
	return NewProfileUsecase(users, images, slog.New(slog.NewTextHandler(io.Discard, nil))), users, images
}

func storedUser() *authdomain.User {
	old := "http://cdn/chat_profile_pics/old.png"
	return &authdomain.User{
		ID:         "u-1",
		FullName:   "Ada Lovelace",
		Email:      "ada@x.com",
		Password:   "hash",
		ProfilePic: &old,
	}
}

func TestGetProfile(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		req := require.New(t)
		uc, users, _ := newProfileFixture(t)
		users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(), nil).Times(1)

		user, err := uc.GetProfile(context.Background(), "u-1")
		req.NoError(err)
		req.Empty(user.Password)
	})

	t.Run("gone", func(t *testing.T) {
		uc, users, _ := newProfileFixture(t)
		users.EXPECT().FindByID(gomock.Any(), "u-1").Return(nil, nil).Times(1)

		_, err := uc.GetProfile(context.Background(), "u-1")
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUpdateProfile_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.UpdateProfileRequest
		want error
	}{
		{"short name", dto.UpdateProfileRequest{FullName: " Al ", ImagePath: "/tmp/p.png"}, authdomain.ErrFullNameLength},
		{"whitespace name", dto.UpdateProfileRequest{FullName: "   "}, authdomain.ErrFullNameLength},
		{"bad email", dto.UpdateProfileRequest{Email: "nope", ImagePath: "/tmp/p.png"}, domain.ErrInvalidEmailFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, users, images := newProfileFixture(t)
			users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(), nil).Times(1)
			users.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)
			images.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			_, err := uc.UpdateProfile(context.Background(), "u-1", &tt.req)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdateProfile_UserGone(t *testing.T) {
	uc, users, _ := newProfileFixture(t)
	users.EXPECT().FindByID(gomock.Any(), "u-1").Return(nil, nil).Times(1)

	_, err := uc.UpdateProfile(context.Background(), "u-1", &dto.UpdateProfileRequest{FullName: "Ada"})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdateProfile_ReplacesPicture(t *testing.T) {
	req := require.New(t)
	uc, users, images := newProfileFixture(t)

	users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(), nil).Times(1)
	gomock.InOrder(
		images.EXPECT().Upload(gomock.Any(), "/tmp/upload-9.png", imagestore.FolderProfilePics).
			Return("http://cdn/chat_profile_pics/new.png", nil).Times(1),
		users.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *authdomain.User) error {
				req.Equal("Ada King", u.FullName)
				req.Equal("countess@x.com", u.Email)
				req.Equal("hash", u.Password)
				return nil
			}).Times(1),
		images.EXPECT().Delete(gomock.Any(), "http://cdn/chat_profile_pics/old.png").Return(errors.New("ignored")).Times(1),
	)

	user, err := uc.UpdateProfile(context.Background(), "u-1", &dto.UpdateProfileRequest{
		FullName:  "  Ada King ",
		Email:     " Countess@X.com",
		ImagePath: "/tmp/upload-9.png",
	})
	req.NoError(err)
	req.Equal("http://cdn/chat_profile_pics/new.png", *user.ProfilePic)
	req.Empty(user.Password)
}

func TestUpdateProfile_UploadFailure(t *testing.T) {
	uc, users, images := newProfileFixture(t)
	users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(), nil).Times(1)
	images.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down")).Times(1)
	users.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	_, err := uc.UpdateProfile(context.Background(), "u-1", &dto.UpdateProfileRequest{ImagePath: "/tmp/p.png"})
	require.ErrorIs(t, err, domain.ErrPictureUpload)
}

func TestUpdateProfile_EmailInUseKeepsOldPicture(t *testing.T) {
	req := require.New(t)
	uc, users, images := newProfileFixture(t)

	users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(), nil).Times(1)
	images.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("http://cdn/chat_profile_pics/new.png", nil).Times(1)
	users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(authdomain.ErrEmailTaken.Wrap(errors.New("23505"))).Times(1)
	images.EXPECT().Delete(gomock.Any(), "http://cdn/chat_profile_pics/new.png").Return(nil).Times(1)

	_, err := uc.UpdateProfile(context.Background(), "u-1", &dto.UpdateProfileRequest{Email: "taken@x.com", ImagePath: "/tmp/p.png"})
	req.ErrorIs(err, domain.ErrEmailInUse)
}

func TestUpdateProfile_NoPictureNoDelete(t *testing.T) {
	req := require.New(t)
	uc, users, images := newProfileFixture(t)

	users.EXPECT().FindByID(gomock.Any(), "u-1").Return(storedUser(), nil).Times(1)
	users.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	images.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	user, err := uc.UpdateProfile(context.Background(), "u-1", &dto.UpdateProfileRequest{FullName: "Ada Byron"})
	req.NoError(err)
	req.Equal("Ada Byron", user.FullName)
	req.Equal("http://cdn/chat_profile_pics/old.png", *user.ProfilePic)
}
