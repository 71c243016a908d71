package apperrors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := NewConflict("у сотрудника уже есть открытая смена")
	require.Equal(t, KindConflict, KindOf(err))
	require.True(t, IsKind(err, KindConflict))
	require.False(t, IsKind(err, KindValidation))

	wrapped := errors.Wrap(err, "ошибка открытия смены")
	require.Equal(t, KindConflict, KindOf(wrapped))

	require.Equal(t, Kind(""), KindOf(errors.New("прочая ошибка")))
	require.Equal(t, Kind(""), KindOf(nil))
}

func TestWrapNil(t *testing.T) {
	require.Nil(t, Wrap(nil, KindPolicy, "не должно быть ошибки"))
}
