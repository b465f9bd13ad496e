package commands_test

import (
	"errors"
	"testing"

	"digisales/internal/core/application/usecases/commands"
	"digisales/internal/core/ports"
	"digisales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateSessionCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewCreateSessionCommand("tbl-1", 4, "dine_in", "window seat")
	require.NoError(t, err)
	assert.Equal(t, "tbl-1", cmd.TableID())
	assert.Equal(t, 4, cmd.GuestCount())
	assert.Equal(t, "dine_in", cmd.SessionType())
	assert.Equal(t, "window seat", cmd.Notes())
}

func TestNewCreateSessionCommand_DefaultsSessionType(t *testing.T) {
	cmd, err := commands.NewCreateSessionCommand("tbl-1", 2, "", "")
	require.NoError(t, err)
	assert.Equal(t, "dine_in", cmd.SessionType())
}

func TestNewCreateSessionCommand_EmptyTable(t *testing.T) {
	_, err := commands.NewCreateSessionCommand("", 2, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCreateSessionCommand_ZeroGuests(t *testing.T) {
	_, err := commands.NewCreateSessionCommand("tbl-1", 0, "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestCreateSessionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSessionCommand("tbl-1", 4, "dine_in", "")
	require.NoError(t, err)

	gw := new(MockPosGateway)
	gw.On("CreateSession", mock.Anything, ports.CreateSessionRequest{
		TableID:     "tbl-1",
		GuestCount:  4,
		SessionType: "dine_in",
	}).Return("sess-42", nil).Once()

	h := commands.NewCreateSessionCommandHandler(gw)
	sessionID, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "sess-42", sessionID)
	gw.AssertExpectations(t)
}

func TestCloseSessionCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCloseSessionCommand("sess-42")
	require.NoError(t, err)

	gw := new(MockPosGateway)
	gw.On("CloseSession", mock.Anything, "sess-42").Return(nil).Once()

	h := commands.NewCloseSessionCommandHandler(gw)
	require.NoError(t, h.Handle(ctx, cmd))
	gw.AssertExpectations(t)
}

func TestCloseSessionCommandHandler_Handle_GatewayError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCloseSessionCommand("sess-42")
	require.NoError(t, err)

	gw := new(MockPosGateway)
	gw.On("CloseSession", mock.Anything, "sess-42").Return(errors.New("gateway down")).Once()

	h := commands.NewCloseSessionCommandHandler(gw)
	require.Error(t, h.Handle(ctx, cmd))
}
