package ddns_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"testing"

	"github.com/Travis-Britz/route53-ddns"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAddr = netip.MustParseAddr("10.10.1.1")

func changeOutput() *route53.ChangeResourceRecordSetsOutput {
	return &route53.ChangeResourceRecordSetsOutput{
		ChangeInfo: &types.ChangeInfo{
			Id:      aws.String("/change/C2"),
			Status:  types.ChangeStatusPending,
			Comment: aws.String("Update from update-route53"),
		},
	}
}

func newTestUpdater(t *testing.T, p ddns.Provider, c ddns.Checker) (*ddns.Updater, *bytes.Buffer) {
	t.Helper()
	out := new(bytes.Buffer)
	u, err := ddns.New(
		ddns.UsingProvider(p),
		ddns.UsingChecker(c),
		ddns.UsingResolver(ddns.ResolverFunc(func(context.Context) (netip.Addr, error) {
			return testAddr, nil
		})),
		ddns.WithOutput(out),
	)
	require.NoError(t, err)
	return u, out
}

func TestUpdateAlways(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)

	provider.EXPECT().HostedZoneID(gomock.Any(), "example.com").Return("zone1", nil)
	checker.EXPECT().ResolvesTo(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	provider.EXPECT().Upsert(gomock.Any(), "zone1", "test.example.com", testAddr).Return(changeOutput(), nil)

	u, out := newTestUpdater(t, provider, checker)
	res, err := u.Update(context.Background(), "test.example.com", testAddr, true)
	require.NoError(t, err)

	assert.False(t, res.Skipped)
	assert.Equal(t, "zone1", res.ZoneID)
	require.NotNil(t, res.Change)
	assert.Equal(t, "/change/C2", aws.ToString(res.Change.Id))

	var printed types.ChangeInfo
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, "/change/C2", aws.ToString(printed.Id))
	assert.Equal(t, types.ChangeStatusPending, printed.Status)
}

func TestUpdateNoChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)

	provider.EXPECT().HostedZoneID(gomock.Any(), "example.com").Return("zone1", nil)
	checker.EXPECT().ResolvesTo(gomock.Any(), "test.example.com", testAddr).Return(true, nil)
	provider.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	u, out := newTestUpdater(t, provider, checker)
	res, err := u.Update(context.Background(), "test.example.com", testAddr, false)
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Nil(t, res.Change)
	assert.Equal(t, ddns.NoChangeMessage, strings.TrimSpace(out.String()))
}

func TestUpdateChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)

	gomock.InOrder(
		provider.EXPECT().HostedZoneID(gomock.Any(), "bar.co.uk").Return("zone1", nil),
		checker.EXPECT().ResolvesTo(gomock.Any(), "foo.bar.co.uk", testAddr).Return(false, nil),
		provider.EXPECT().Upsert(gomock.Any(), "zone1", "foo.bar.co.uk", testAddr).Return(changeOutput(), nil),
	)

	u, out := newTestUpdater(t, provider, checker)
	res, err := u.Update(context.Background(), "foo.bar.co.uk", testAddr, false)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.NotContains(t, out.String(), ddns.NoChangeMessage)
	assert.Contains(t, out.String(), "/change/C2")
}

func TestUpdateZoneError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)

	provider.EXPECT().HostedZoneID(gomock.Any(), "example.com").Return("", ddns.ErrZoneNotFound)

	u, out := newTestUpdater(t, provider, checker)
	_, err := u.Update(context.Background(), "test.example.com", testAddr, true)
	assert.ErrorIs(t, err, ddns.ErrZoneNotFound)
	assert.Empty(t, out.String())
}

func TestUpdateCheckError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)
	checkErr := errors.New("servfail")

	provider.EXPECT().HostedZoneID(gomock.Any(), "example.com").Return("zone1", nil)
	checker.EXPECT().ResolvesTo(gomock.Any(), "test.example.com", testAddr).Return(false, checkErr)

	u, _ := newTestUpdater(t, provider, checker)
	_, err := u.Update(context.Background(), "test.example.com", testAddr, false)
	assert.ErrorIs(t, err, checkErr)
}

func TestUpdateUpsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)
	upsertErr := errors.New("throttled")

	provider.EXPECT().HostedZoneID(gomock.Any(), "example.com").Return("zone1", nil)
	provider.EXPECT().Upsert(gomock.Any(), "zone1", "test.example.com", testAddr).Return(nil, upsertErr)

	u, _ := newTestUpdater(t, provider, checker)
	_, err := u.Update(context.Background(), "test.example.com", testAddr, true)
	assert.ErrorIs(t, err, upsertErr)
}

func TestRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)

	provider.EXPECT().HostedZoneID(gomock.Any(), "example.com").Return("zone1", nil)
	checker.EXPECT().ResolvesTo(gomock.Any(), "test.example.com", testAddr).Return(true, nil)

	u, _ := newTestUpdater(t, provider, checker)
	res, err := u.Run(context.Background(), "test.example.com", false)
	require.NoError(t, err)
	assert.Equal(t, testAddr, res.Addr)
	assert.True(t, res.Skipped)
}

func TestRunResolveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	resolveErr := errors.New("no route to host")

	u, err := ddns.New(
		ddns.UsingProvider(provider),
		ddns.UsingResolver(ddns.ResolverFunc(func(context.Context) (netip.Addr, error) {
			return netip.Addr{}, resolveErr
		})),
	)
	require.NoError(t, err)
	_, err = u.Run(context.Background(), "test.example.com", true)
	assert.ErrorIs(t, err, resolveErr)
}

func TestNewRequiresProvider(t *testing.T) {
	_, err := ddns.New()
	assert.Error(t, err)
}

func TestNewOptionError(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := ddns.New(
		ddns.UsingProvider(ddns.NewMockProvider(ctrl)),
		ddns.UsingWebResolver("http://[::1"),
	)
	assert.Error(t, err)
}

func TestRunIPv6EchoFailsBeforeProvider(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "2001:db8::7")
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)
	provider.EXPECT().HostedZoneID(gomock.Any(), gomock.Any()).Times(0)

	web, err := ddns.WebResolver(srv.URL)
	require.NoError(t, err)
	out := new(bytes.Buffer)
	u, err := ddns.New(
		ddns.UsingProvider(provider),
		ddns.UsingChecker(checker),
		ddns.UsingResolver(ddns.PublicResolver{
			Local: ddns.ResolverFunc(func(context.Context) (netip.Addr, error) {
				return netip.MustParseAddr("192.168.1.20"), nil
			}),
			Web: web,
		}),
		ddns.WithOutput(out),
	)
	require.NoError(t, err)

	_, err = u.Run(context.Background(), "test.example.com", false)
	assert.ErrorIs(t, err, ddns.ErrNotIPv4)
	assert.Empty(t, out.String())
}

func TestUpdateRejectsIPv6(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)

	u, _ := newTestUpdater(t, provider, checker)
	_, err := u.Update(context.Background(), "test.example.com", netip.MustParseAddr("2001:db8::7"), true)
	assert.ErrorIs(t, err, ddns.ErrNotIPv4)
}

func TestUpdateEmptyProviderResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := ddns.NewMockProvider(ctrl)
	checker := ddns.NewMockChecker(ctrl)

	provider.EXPECT().HostedZoneID(gomock.Any(), "example.com").Return("zone1", nil)
	provider.EXPECT().Upsert(gomock.Any(), "zone1", "test.example.com", testAddr).Return(nil, nil)

	u, out := newTestUpdater(t, provider, checker)
	_, err := u.Update(context.Background(), "test.example.com", testAddr, true)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
