package bridge_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadrss/registry-watcher/internal/adapter"
	"github.com/shadrss/registry-watcher/internal/bridge"
	"github.com/shadrss/registry-watcher/internal/logger"
	"github.com/shadrss/registry-watcher/internal/messaging"
	"github.com/shadrss/registry-watcher/internal/notifier"
	"github.com/shadrss/registry-watcher/internal/webhook"
	mockspkg "github.com/shadrss/registry-watcher/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl      *gomock.Controller
	natsJS    *mockspkg.MockNatsJetStream
	natsConn  *mockspkg.MockNatsConn
	jetStream *mockspkg.MockJetStream
	notifier  *mockspkg.MockNotifier
}

// setupTestBridge creates all the mocks for testing
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	return &testBridgeMocks{
		ctrl:      ctrl,
		natsJS:    mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:  mockspkg.NewMockNatsConn(ctrl),
		jetStream: mockspkg.NewMockJetStream(ctrl),
		notifier:  mockspkg.NewMockNotifier(ctrl),
	}
}

// tearDownTestBridge cleans up the test mocks
func tearDownTestBridge(mocks *testBridgeMocks) {
	mocks.ctrl.Finish()
}

func testBridgeConfig() bridge.Config {
	return bridge.Config{
		URL:            "nats://localhost:4222",
		StreamName:     "sync",
		ConsumerName:   "dispatcher",
		MaxReconnects:  10,
		ReconnectWait:  1 * time.Second,
		ConnectionName: "test-dispatcher",
		AckWaitTimeout: 30 * time.Second,
		MaxDeliver:     5,
	}
}

func newTestBridge(t *testing.T, mocks *testBridgeMocks) bridge.Bridge {
	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.notifier, &adapter.RealJSON{})
	require.NoError(t, err)
	return b
}

func TestBridge_NewBridge_Success(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)
	assert.NotNil(t, b)
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	config := testBridgeConfig()

	mocks.natsJS.
		EXPECT().
		Connect(config.URL, gomock.Any()).
		Return(nil, nil, errors.New("connection refused"))

	b, err := bridge.NewBridge(config, mocks.natsJS, mocks.notifier, &adapter.RealJSON{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
	assert.Nil(t, b)
}

func TestBridge_Run_CreateConsumerError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "sync", gomock.Any()).
		Return(nil, errors.New("stream not found"))

	err := b.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestBridge_Run_ConsumerInfoError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)
	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "sync", gomock.Any()).
		Return(consumer, nil)
	consumer.
		EXPECT().
		Info(gomock.Any()).
		Return(nil, errors.New("consumer deleted"))

	err := b.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get consumer info")
}

func TestBridge_Run_ContextCancellation(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)
	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumeCtx := mockspkg.NewMockConsumeContext(mocks.ctrl)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "sync", gomock.Any()).
		Return(consumer, nil)
	consumer.
		EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "dispatcher"}, nil)
	consumer.
		EXPECT().
		Consume(gomock.Any()).
		Return(consumeCtx, nil)
	consumeCtx.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- b.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("bridge did not shut down in time")
	}
}

// runBridgeWithMessage runs the bridge, feeds it a single message, and waits
// for the done channel to fire before cancelling.
func runBridgeWithMessage(t *testing.T, mocks *testBridgeMocks, b bridge.Bridge, msg adapter.Message, done <-chan struct{}) {
	consumer := mockspkg.NewMockNatsConsumer(mocks.ctrl)
	consumeCtx := mockspkg.NewMockConsumeContext(mocks.ctrl)

	handlerCh := make(chan adapter.MessageHandler, 1)
	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), "sync", gomock.Any()).
		Return(consumer, nil)
	consumer.
		EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "dispatcher"}, nil)
	consumer.
		EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(h adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			handlerCh <- h
			return consumeCtx, nil
		})
	consumeCtx.EXPECT().Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	runDone := make(chan struct{})
	go func() {
		_ = b.Run(ctx)
		close(runDone)
	}()

	var handler adapter.MessageHandler
	select {
	case handler = <-handlerCh:
	case <-time.After(2 * time.Second):
		t.Fatal("bridge never started consuming")
	}
	handler(msg)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("message was not processed in time")
	}

	cancel()
	<-runDone
}

func TestBridge_ProcessMessage_SingleUpdate(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)

	event := messaging.SyncCycleEvent{
		CycleID:   "cycle-1",
		EventType: messaging.SyncEventCycleCompleted,
		Updates: []messaging.RegistryUpdate{
			{RegistryID: 7, Items: []webhook.Item{{Title: "button", Link: "https://ui.shadcn.com/r/button"}}},
		},
	}
	data, err := (&adapter.RealJSON{}).Marshal(event)
	require.NoError(t, err)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(data).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil)

	mocks.notifier.
		EXPECT().
		Notify(gomock.Any(), uint64(7), gomock.Len(1)).
		Return([]webhook.DeliveryResult{{WebhookID: "whk_1", Success: true}}, nil)

	acked := make(chan struct{})
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(acked)
		return nil
	})

	runBridgeWithMessage(t, mocks, b, msg, acked)
}

func TestBridge_ProcessMessage_BatchUpdate(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)

	event := messaging.SyncCycleEvent{
		CycleID:   "cycle-2",
		EventType: messaging.SyncEventCycleCompleted,
		Updates: []messaging.RegistryUpdate{
			{RegistryID: 1},
			{RegistryID: 2, Items: []webhook.Item{{Title: "card", Link: "https://ui.shadcn.com/r/card"}}},
		},
	}
	data, err := (&adapter.RealJSON{}).Marshal(event)
	require.NoError(t, err)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(data).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil)

	mocks.notifier.
		EXPECT().
		NotifyBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, updates []notifier.SourceUpdate) ([]webhook.DeliveryResult, error) {
			require.Len(t, updates, 2)
			assert.Equal(t, uint64(1), updates[0].RegistryID)
			assert.Equal(t, uint64(2), updates[1].RegistryID)
			return []webhook.DeliveryResult{{WebhookID: "whk_1", Success: true}}, nil
		})

	acked := make(chan struct{})
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(acked)
		return nil
	})

	runBridgeWithMessage(t, mocks, b, msg, acked)
}

func TestBridge_ProcessMessage_InvalidJSON(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return([]byte("not json")).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil)

	termed := make(chan struct{})
	msg.EXPECT().Term().DoAndReturn(func() error {
		close(termed)
		return nil
	})

	runBridgeWithMessage(t, mocks, b, msg, termed)
}

func TestBridge_ProcessMessage_NotifyError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)

	event := messaging.SyncCycleEvent{
		CycleID:   "cycle-3",
		EventType: messaging.SyncEventCycleCompleted,
		Updates:   []messaging.RegistryUpdate{{RegistryID: 9}},
	}
	data, err := (&adapter.RealJSON{}).Marshal(event)
	require.NoError(t, err)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(data).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 2}, nil)

	mocks.notifier.
		EXPECT().
		Notify(gomock.Any(), uint64(9), gomock.Any()).
		Return(nil, notifier.ErrRegistryNotFound)

	naked := make(chan struct{})
	msg.EXPECT().Nak().DoAndReturn(func() error {
		close(naked)
		return nil
	})

	runBridgeWithMessage(t, mocks, b, msg, naked)
}

func TestBridge_ProcessMessage_EmptyCycleIsAcked(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)

	event := messaging.SyncCycleEvent{
		CycleID:   "cycle-4",
		EventType: messaging.SyncEventCycleCompleted,
	}
	data, err := (&adapter.RealJSON{}).Marshal(event)
	require.NoError(t, err)

	msg := mockspkg.NewMockJetStreamMessage(mocks.ctrl)
	msg.EXPECT().Data().Return(data).AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil)

	acked := make(chan struct{})
	msg.EXPECT().Ack().DoAndReturn(func() error {
		close(acked)
		return nil
	})

	runBridgeWithMessage(t, mocks, b, msg, acked)
}

func TestBridge_Close(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newTestBridge(t, mocks)

	mocks.natsConn.EXPECT().Close()
	b.Close()
}
