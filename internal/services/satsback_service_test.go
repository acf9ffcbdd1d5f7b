package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/nbd-wtf/go-nostr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lacrypta/satsback-api/internal/client/lawallet"
	"github.com/lacrypta/satsback-api/internal/db"
	"github.com/lacrypta/satsback-api/internal/events"
	"github.com/lacrypta/satsback-api/internal/logger"
	"github.com/lacrypta/satsback-api/internal/mocks"
	"github.com/lacrypta/satsback-api/internal/services"
)

func init() {
	logger.InitLogger()
}

type serviceFixture struct {
	vouchers *mocks.MockVoucherStore
	resolver *mocks.MockAliasResolver

	privateKey   string
	signerPubkey string
	userPrivkey  string
	userPubkey   string
	ledgerPubkey string
}

// newServiceFixture wires a service with mocked store/resolver and real
// NIP-04 and Schnorr primitives over freshly generated keys.
func newServiceFixture(t *testing.T, ctrl *gomock.Controller, defaultRate, volunteerRate float64) (*services.SatsbackService, *serviceFixture) {
	t.Helper()

	f := &serviceFixture{
		vouchers:   mocks.NewMockVoucherStore(ctrl),
		resolver:   mocks.NewMockAliasResolver(ctrl),
		privateKey: nostr.GeneratePrivateKey(),
	}

	signerPubkey, err := nostr.GetPublicKey(f.privateKey)
	require.NoError(t, err)
	f.signerPubkey = signerPubkey

	f.userPrivkey = nostr.GeneratePrivateKey()
	userPubkey, err := nostr.GetPublicKey(f.userPrivkey)
	require.NoError(t, err)
	f.userPubkey = userPubkey

	ledgerPrivkey := nostr.GeneratePrivateKey()
	ledgerPubkey, err := nostr.GetPublicKey(ledgerPrivkey)
	require.NoError(t, err)
	f.ledgerPubkey = ledgerPubkey

	whitelist := services.NewWhitelist(nil, []string{f.userPubkey})

	service := services.NewSatsbackService(
		whitelist,
		f.vouchers,
		f.resolver,
		events.NIP04Encryptor{},
		events.SchnorrSigner{},
		defaultRate,
		volunteerRate,
	)

	return service, f
}

func (f *serviceFixture) params(amountMsats int64) services.CreateSatsbackParams {
	return services.CreateSatsbackParams{
		TransactionRef: "f0e1d2c3b4a5968778695a4b3c2d1e0ff0e1d2c3b4a5968778695a4b3c2d1e0f",
		AmountMsats:    amountMsats,
		UserPubkey:     f.userPubkey,
		LedgerPubkey:   f.ledgerPubkey,
		PrivateKey:     f.privateKey,
	}
}

func (f *serviceFixture) expectAliases() {
	f.resolver.EXPECT().
		ResolveAlias(gomock.Any(), f.signerPubkey).
		Return(&lawallet.Alias{Username: "lacard", FederationID: "lawallet.ar"}, nil)
	f.resolver.EXPECT().
		ResolveAlias(gomock.Any(), f.userPubkey).
		Return(&lawallet.Alias{Username: "pulpo", FederationID: "lawallet.ar"}, nil)
}

func TestCreateSatsback_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, f := newServiceFixture(t, ctrl, 0.02, 0.1)

	// No store or resolver expectations: a rejected identity must cause
	// no side effects at all.
	params := f.params(100000)
	params.UserPubkey = "0000000000000000000000000000000000000000000000000000000000000000"

	event, err := service.CreateSatsback(context.Background(), params)
	assert.Nil(t, event)
	assert.ErrorIs(t, err, services.ErrUnauthorized)
}

func TestCreateSatsback_InvalidAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, f := newServiceFixture(t, ctrl, 0.02, 0.1)

	for _, amount := range []int64{0, -1, -20000} {
		event, err := service.CreateSatsback(context.Background(), f.params(amount))
		assert.Nil(t, event)
		assert.ErrorIs(t, err, services.ErrInvalidAmount)
	}
}

func TestCreateSatsback_DefaultTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, f := newServiceFixture(t, ctrl, 0.02, 0.1)

	f.vouchers.EXPECT().
		GetVolunteer(gomock.Any(), f.userPubkey).
		Return(nil, nil)
	f.expectAliases()

	before := time.Now()
	params := f.params(100000)
	event, err := service.CreateSatsback(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.Equal(t, events.KindInternalTransactionStart, event.Kind)
	assert.Greater(t, int64(event.CreatedAt), before.Unix())

	require.Len(t, event.Tags, 6)
	assert.Equal(t, nostr.Tag{"p", f.ledgerPubkey}, event.Tags[0])
	assert.Equal(t, nostr.Tag{"p", f.userPubkey}, event.Tags[1])
	assert.Equal(t, nostr.Tag{"t", "internal-transaction-start"}, event.Tags[2])
	assert.Equal(t, nostr.Tag{"t", "satsback"}, event.Tags[3])
	assert.Equal(t, nostr.Tag{"e", params.TransactionRef}, event.Tags[4])

	require.Len(t, event.Tags[5], 4)
	assert.Equal(t, "metadata", event.Tags[5][0])
	assert.Equal(t, "true", event.Tags[5][1])
	assert.Equal(t, "nip04", event.Tags[5][2])

	// The receiver must be able to decrypt the metadata payload
	plaintext, err := events.NIP04Encryptor{}.Decrypt(f.userPrivkey, f.signerPubkey, event.Tags[5][3])
	require.NoError(t, err)
	assert.JSONEq(t, `{"sender":"lacard@lawallet.ar","receiver":"pulpo@lawallet.ar"}`, plaintext)

	var content events.Content
	require.NoError(t, json.Unmarshal([]byte(event.Content), &content))
	assert.Equal(t, int64(2000), content.Tokens.BTC)
	assert.Equal(t, "Satsback por pagar con LaCard. (2% OFF)", content.Memo)

	assert.Equal(t, f.signerPubkey, event.PubKey)
	ok, err := event.CheckSignature()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateSatsback_VolunteerTier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, f := newServiceFixture(t, ctrl, 0.02, 0.1)

	f.vouchers.EXPECT().
		GetVolunteer(gomock.Any(), f.userPubkey).
		Return(&db.Volunteer{PublicKey: f.userPubkey, VoucherMsats: 10000}, nil)
	f.vouchers.EXPECT().
		DeductVoucher(gomock.Any(), f.userPubkey, int64(1000)).
		Return(int64(1000), int64(9000), nil)
	f.expectAliases()

	event, err := service.CreateSatsback(context.Background(), f.params(1000))
	require.NoError(t, err)

	var content events.Content
	require.NoError(t, json.Unmarshal([]byte(event.Content), &content))
	assert.Equal(t, int64(1000), content.Tokens.BTC)
	assert.Equal(t, "Satsback por pagar con LaCard y ser voluntario. (10% OFF). Te quedan 9 sats en tu voucher.", content.Memo)
}

func TestCreateSatsback_VolunteerVoucherExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, f := newServiceFixture(t, ctrl, 0.02, 0.5)

	// raw = 20000 * 0.5 = 10000, capped to the 5000 msats left
	f.vouchers.EXPECT().
		GetVolunteer(gomock.Any(), f.userPubkey).
		Return(&db.Volunteer{PublicKey: f.userPubkey, VoucherMsats: 5000}, nil)
	f.vouchers.EXPECT().
		DeductVoucher(gomock.Any(), f.userPubkey, int64(5000)).
		Return(int64(5000), int64(0), nil)
	f.expectAliases()

	event, err := service.CreateSatsback(context.Background(), f.params(20000))
	require.NoError(t, err)

	var content events.Content
	require.NoError(t, json.Unmarshal([]byte(event.Content), &content))
	assert.Equal(t, int64(5000), content.Tokens.BTC)
	assert.Equal(t, "Terminaste tu voucher. Gracias por ser voluntario! <3", content.Memo)
}

func TestCreateSatsback_ExhaustedVoucherFallsBackToDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, f := newServiceFixture(t, ctrl, 0.02, 0.5)

	// A record with a zero balance no longer qualifies for the volunteer
	// tier, so no deduction happens.
	f.vouchers.EXPECT().
		GetVolunteer(gomock.Any(), f.userPubkey).
		Return(&db.Volunteer{PublicKey: f.userPubkey, VoucherMsats: 0}, nil)
	f.expectAliases()

	event, err := service.CreateSatsback(context.Background(), f.params(100000))
	require.NoError(t, err)

	var content events.Content
	require.NoError(t, json.Unmarshal([]byte(event.Content), &content))
	assert.Equal(t, int64(2000), content.Tokens.BTC)
	assert.Equal(t, "Satsback por pagar con LaCard. (2% OFF)", content.Memo)
}

func TestCreateSatsback_ResolverFailureAfterDeduction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, f := newServiceFixture(t, ctrl, 0.02, 0.1)

	// The voucher is already debited when alias resolution fails; the
	// deduction is not rolled back.
	f.vouchers.EXPECT().
		GetVolunteer(gomock.Any(), f.userPubkey).
		Return(&db.Volunteer{PublicKey: f.userPubkey, VoucherMsats: 10000}, nil)
	f.vouchers.EXPECT().
		DeductVoucher(gomock.Any(), f.userPubkey, int64(1000)).
		Return(int64(1000), int64(9000), nil)
	f.resolver.EXPECT().
		ResolveAlias(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		AnyTimes()

	event, err := service.CreateSatsback(context.Background(), f.params(1000))
	assert.Nil(t, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolve alias")
}

func TestCreateSatsback_StoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, f := newServiceFixture(t, ctrl, 0.02, 0.1)

	f.vouchers.EXPECT().
		GetVolunteer(gomock.Any(), f.userPubkey).
		Return(nil, errors.New("database unavailable"))

	event, err := service.CreateSatsback(context.Background(), f.params(1000))
	assert.Nil(t, event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "look up volunteer")
}
