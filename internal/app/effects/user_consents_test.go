package effects

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/go-storefront-state/internal/domain"
	"github.com/jsamuelsen11/go-storefront-state/internal/state/store"
)

func TestWithdrawUserConsent(t *testing.T) {
	t.Parallel()

	t.Run("success reloads consents", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, loggedIn("current"))
		h.userConsents.EXPECT().Withdraw(mock.Anything, "current", "c1").Return(nil)
		h.userConsents.EXPECT().Load(mock.Anything, "current").
			Return([]domain.ConsentTemplate{{ID: "MARKETING"}}, nil)
		h.start(t)

		h.store.Dispatch(store.WithdrawUserConsent{UserID: "current", ConsentCode: "c1"})
		st := h.idle(t)

		assert.True(t, store.ProcessSuccess(st, store.ProcessKey(store.ProcessWithdrawConsent, "c1")))
		assert.True(t, st.User.Consents.Success)
		assert.Equal(t, []domain.ConsentTemplate{{ID: "MARKETING"}}, st.User.Consents.Value)
	})

	t.Run("failure lands in the process slot", func(t *testing.T) {
		t.Parallel()

		h := newHarness(t, loggedIn("current"))
		h.userConsents.EXPECT().Withdraw(mock.Anything, "current", "c1").
			Return(&domain.BackendError{Status: 404, Message: "consent not found", Kind: domain.ErrNotFound})
		h.start(t)

		h.store.Dispatch(store.WithdrawUserConsent{UserID: "current", ConsentCode: "c1"})
		st := h.idle(t)

		slot := st.Process.Get(store.ProcessKey(store.ProcessWithdrawConsent, "c1"))
		require.True(t, slot.Failed())
		assert.Equal(t, 404, slot.Error.Payload.Status)
		assert.False(t, st.User.Consents.Loading)
	})
}

func TestGiveUserConsent_ValidationFailure(t *testing.T) {
	t.Parallel()

	h := newHarness(t, loggedIn("current"))
	h.userConsents.EXPECT().Give(mock.Anything, "current", "MARKETING", 0).
		Return(nil, &domain.ValidationError{Fields: map[string]string{"consentTemplateVersion": "outdated"}})
	h.start(t)

	h.store.Dispatch(store.GiveUserConsent{UserID: "current", TemplateID: "MARKETING"})
	st := h.idle(t)

	slot := st.Process.Get(store.ProcessKey(store.ProcessGiveConsent, "MARKETING"))
	require.True(t, slot.Failed())
	assert.Equal(t, 400, slot.Error.Payload.Status)
	assert.Equal(t, map[string]string{"consentTemplateVersion": "outdated"}, slot.Error.Payload.Fields)
}

func TestGiveUserConsent_OverlappingGivesKeepTheirOutcomes(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	h := newHarness(t, loggedIn("current"))
	h.userConsents.EXPECT().Give(mock.Anything, "current", "MARKETING", 0).
		RunAndReturn(func(ctx context.Context, _, _ string, _ int) (*domain.ConsentTemplate, error) {
			select {
			case <-release:
				return &domain.ConsentTemplate{ID: "MARKETING"}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}).Once()
	h.userConsents.EXPECT().Give(mock.Anything, "current", "PERSONALIZATION", 0).
		Return(nil, &domain.BackendError{Status: 500, Message: "backend down"}).Once()
	h.start(t)

	h.store.Dispatch(
		store.GiveUserConsent{UserID: "current", TemplateID: "MARKETING"},
		store.GiveUserConsent{UserID: "current", TemplateID: "PERSONALIZATION"},
	)
	h.waitFor(t, func(st store.State) bool {
		return store.ProcessError(st, store.ProcessKey(store.ProcessGiveConsent, "PERSONALIZATION"))
	})
	close(release)
	st := h.idle(t)

	given := st.Process.Get(store.ProcessKey(store.ProcessGiveConsent, "MARKETING"))
	assert.True(t, given.Success)

	failed := st.Process.Get(store.ProcessKey(store.ProcessGiveConsent, "PERSONALIZATION"))
	require.True(t, failed.Failed())
	assert.Equal(t, 500, failed.Error.Payload.Status)
}

func TestGiveUserConsent_RepeatedGiveIsAnsweredByTheFirst(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	h := newHarness(t, loggedIn("current"))
	h.userConsents.EXPECT().Give(mock.Anything, "current", "MARKETING", 0).
		RunAndReturn(func(ctx context.Context, _, _ string, _ int) (*domain.ConsentTemplate, error) {
			select {
			case <-release:
				return &domain.ConsentTemplate{ID: "MARKETING"}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}).Once()
	h.start(t)

	give := store.GiveUserConsent{UserID: "current", TemplateID: "MARKETING"}
	h.store.Dispatch(give)
	h.waitFor(t, func(st store.State) bool {
		return store.ProcessLoading(st, store.ProcessKey(store.ProcessGiveConsent, "MARKETING"))
	})
	// The queue is FIFO: once the banner flips, the repeated give was reduced.
	h.store.Dispatch(give, store.ToggleBannerVisibility{Visible: false})
	h.waitFor(t, func(st store.State) bool { return !st.AnonymousConsents.UI.BannerVisible })
	close(release)
	st := h.idle(t)

	assert.True(t, store.ProcessSuccess(st, store.ProcessKey(store.ProcessGiveConsent, "MARKETING")))
}

func TestTransferUserConsent_ErrorIsSwallowed(t *testing.T) {
	t.Parallel()

	h := newHarness(t, loggedIn("current"))
	h.userConsents.EXPECT().Give(mock.Anything, "current", "MARKETING", 0).Return(nil, domain.ErrConflict)
	h.start(t)

	h.store.Dispatch(store.TransferAnonymousConsent{UserID: "current", TemplateID: "MARKETING"})
	st := h.idle(t)

	assert.Zero(t, st.Process.Len())
}
