// Package common - Test cấu trúc lỗi và convert lỗi MongoDB.
package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestError_Is(t *testing.T) {
	// Hai error cùng mã và message phải khớp qua errors.Is
	err := NewError(ErrCodeValidationInput, "비밀번호는 4자 이상이어야 합니다.", StatusBadRequest, nil)
	assert.True(t, errors.Is(err, ErrWeakPassword), "error cùng mã và message phải khớp ErrWeakPassword")

	// Khác message thì không khớp
	other := NewError(ErrCodeValidationInput, "message khác", StatusBadRequest, nil)
	assert.False(t, errors.Is(other, ErrWeakPassword))

	// Wrap qua fmt.Errorf vẫn khớp
	wrapped := fmt.Errorf("lớp ngoài: %w", ErrPhoneDuplicate)
	assert.True(t, errors.Is(wrapped, ErrPhoneDuplicate))
}

func TestError_StatusCode(t *testing.T) {
	var appErr *Error

	assert.True(t, errors.As(ErrPendingApproval, &appErr))
	assert.Equal(t, StatusForbidden, appErr.StatusCode, "tài khoản chờ duyệt phải trả về 403")

	assert.True(t, errors.As(ErrPhoneDuplicate, &appErr))
	assert.Equal(t, StatusConflict, appErr.StatusCode, "số điện thoại trùng phải trả về 409")

	assert.True(t, errors.As(ErrInvalidCredentials, &appErr))
	assert.Equal(t, StatusUnauthorized, appErr.StatusCode)
}

func TestConvertMongoError(t *testing.T) {
	// nil giữ nguyên nil
	assert.Nil(t, ConvertMongoError(nil))

	// Lỗi nghiệp vụ đã map sẵn được giữ nguyên, không bị convert tiếp
	assert.Equal(t, ErrNotFound, ConvertMongoError(ErrNotFound))

	// Command error được phân loại theo dải mã
	authErr := mongo.CommandError{Code: 250}
	assert.Equal(t, ErrMongoAuth, ConvertMongoError(authErr))

	queryErr := mongo.CommandError{Code: 350}
	assert.Equal(t, ErrMongoQuery, ConvertMongoError(queryErr))

	// Lỗi không phân loại được rơi về lỗi database chung
	var appErr *Error
	unknown := ConvertMongoError(errors.New("lỗi lạ"))
	assert.True(t, errors.As(unknown, &appErr))
	assert.Equal(t, ErrCodeDatabase.Code, appErr.Code.Code)
}
