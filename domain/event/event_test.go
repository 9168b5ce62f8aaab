package event

import (
	"net/http"
	"testing"
	"time"

	domainErrors "clerk-user-sync/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========== Parse 单元测试 ==========

func TestParse_UserCreated(t *testing.T) {
	body := []byte(`{
		"type": "user.created",
		"object": "event",
		"data": {
			"id": "user_123",
			"email_addresses": [{"email_address": "a@example.com"}, {"email_address": "b@example.com"}],
			"phone_numbers": [{"phone_number": "+15550001111"}],
			"first_name": "Ada",
			"last_name": "Lovelace",
			"image_url": "https://img.example.com/ada.png"
		}
	}`)

	evt, err := Parse(body)
	require.NoError(t, err)

	created, ok := evt.(UserCreated)
	require.True(t, ok, "期望 UserCreated，实际 %T", evt)
	assert.Equal(t, TypeUserCreated, created.Type())
	assert.Equal(t, "user_123", created.User.ID)
	assert.Equal(t, "a@example.com", *created.User.PrimaryEmail())
	assert.Equal(t, "+15550001111", *created.User.PrimaryPhone())
}

func TestParse_UserUpdated(t *testing.T) {
	evt, err := Parse([]byte(`{"type":"user.updated","data":{"id":"user_9"}}`))
	require.NoError(t, err)

	updated, ok := evt.(UserUpdated)
	require.True(t, ok)
	assert.Equal(t, "user_9", updated.User.ID)
}

func TestParse_OtherTypes(t *testing.T) {
	for _, typ := range []string{"user.deleted", "session.created", "organization.membership.created"} {
		t.Run(typ, func(t *testing.T) {
			// data 缺失或形状不同也不影响未知事件
			evt, err := Parse([]byte(`{"type":"` + typ + `","data":{"object":"whatever"}}`))
			require.NoError(t, err)

			other, ok := evt.(Other)
			require.True(t, ok)
			assert.Equal(t, Type(typ), other.Type())
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "not json", body: `not-json`},
		{name: "missing type", body: `{"data":{"id":"user_1"}}`},
		{name: "blank type", body: `{"type":"  ","data":{"id":"user_1"}}`},
		{name: "user event without data", body: `{"type":"user.created"}`},
		{name: "user event with null data", body: `{"type":"user.updated","data":null}`},
		{name: "user event without id", body: `{"type":"user.created","data":{"first_name":"x"}}`},
		{name: "user event with wrong data shape", body: `{"type":"user.created","data":{"id":"u","email_addresses":"nope"}}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			evt, err := Parse([]byte(tc.body))
			assert.Nil(t, evt)
			assert.ErrorIs(t, err, domainErrors.ErrMalformedPayload)
		})
	}
}

// ========== 字段提取 ==========

func TestUserData_Record_AllFields(t *testing.T) {
	first, last, img := "Ada", "Lovelace", "https://img.example.com/ada.png"
	data := UserData{
		ID:             "user_123",
		EmailAddresses: []EmailAddress{{EmailAddress: "a@example.com"}},
		PhoneNumbers:   []PhoneNumber{{PhoneNumber: "+15550001111"}},
		FirstName:      &first,
		LastName:       &last,
		ImageURL:       &img,
	}
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.FixedZone("CST", 8*3600))

	user := data.Record(now)

	assert.Equal(t, "user_123", user.ID)
	assert.Equal(t, "a@example.com", *user.Email)
	assert.Equal(t, "+15550001111", *user.Phone)
	assert.Equal(t, "Ada", *user.FirstName)
	assert.Equal(t, "Lovelace", *user.LastName)
	assert.Equal(t, img, *user.AvatarURL)
	assert.Equal(t, now.UTC(), user.UpdatedAt)
}

func TestUserData_Record_MissingOptionalFieldsAreNil(t *testing.T) {
	empty := ""
	data := UserData{ID: "user_1", FirstName: &empty}

	user := data.Record(time.Now())

	assert.Nil(t, user.Email)
	assert.Nil(t, user.Phone)
	assert.Nil(t, user.FirstName)
	assert.Nil(t, user.LastName)
	assert.Nil(t, user.AvatarURL)
	assert.Equal(t, "", user.EmailOrEmpty())
}

func TestHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Svix-Id", "msg_1")
	h.Set("Svix-Timestamp", "1700000000")

	headers := HeadersFromRequest(h)
	assert.False(t, headers.Complete())

	h.Set("Svix-Signature", "v1,abc")
	headers = HeadersFromRequest(h)
	assert.True(t, headers.Complete())
	assert.Equal(t, "v1,abc", headers.HTTP().Get(HeaderSignature))
}
