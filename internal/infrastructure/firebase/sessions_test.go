package firebase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tecnoseguridad/internal/domain/entity"
)

func TestSubscribeInvokesImmediatelyWithCurrentState(t *testing.T) {
	sessions := NewSessions()

	var got []*entity.Identity
	unsubscribe := sessions.Subscribe(func(id *entity.Identity) {
		got = append(got, id)
	})
	defer unsubscribe()

	require.Len(t, got, 1, "callback fires once on subscription")
	assert.Nil(t, got[0], "initial state is signed out")
}

func TestSubscribeSeesSignInAndSignOut(t *testing.T) {
	sessions := NewSessions()

	var got []*entity.Identity
	unsubscribe := sessions.Subscribe(func(id *entity.Identity) {
		got = append(got, id)
	})
	defer unsubscribe()

	identity := &entity.Identity{UID: "uid-1"}
	sessions.Publish(identity)
	sessions.Publish(nil)

	require.Len(t, got, 3)
	assert.Nil(t, got[0])
	assert.Equal(t, identity, got[1])
	assert.Nil(t, got[2])
}

func TestSubscribeAfterSignInReceivesCurrentIdentity(t *testing.T) {
	sessions := NewSessions()
	identity := &entity.Identity{UID: "uid-1"}
	sessions.Publish(identity)

	var got []*entity.Identity
	unsubscribe := sessions.Subscribe(func(id *entity.Identity) {
		got = append(got, id)
	})
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.Equal(t, identity, got[0])
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	sessions := NewSessions()

	calls := 0
	unsubscribe := sessions.Subscribe(func(id *entity.Identity) {
		calls++
	})

	unsubscribe()
	sessions.Publish(&entity.Identity{UID: "uid-1"})

	assert.Equal(t, 1, calls, "only the immediate invocation")
	assert.Equal(t, "uid-1", sessions.Current().UID)
}
