package transport

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Subscriber is a SubscriptionTransport over one websocket endpoint. Every
// active subscription is tracked in a uuid-keyed table so ClearSubscriptions
// can drop them all at once.
type Subscriber struct {
	nodeName string
	nodeURL  string

	mu        sync.Mutex
	ethClient *ethclient.Client
	subs      map[string]event.Subscription
}

func NewSubscriber(name, url string) *Subscriber {
	return &Subscriber{
		nodeName: name,
		nodeURL:  url,
		subs:     map[string]event.Subscription{},
	}
}

func (s *Subscriber) NodeName() string {
	return s.nodeName
}

func (s *Subscriber) connect() (*ethclient.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ethClient != nil {
		return s.ethClient, nil
	}
	client, err := rpc.Dial(s.nodeURL)
	if err != nil {
		return nil, fmt.Errorf("couldn't connect to %s: %w", s.nodeName, err)
	}
	s.ethClient = ethclient.NewClient(client)
	return s.ethClient, nil
}

func (s *Subscriber) register(id string, sub event.Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[id] = sub
}

func (s *Subscriber) deregister(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}

// Subscribe opens a live log subscription and pumps notifications to onLog
// on a dedicated goroutine. Transport-level errors are handed to onError
// instead of being surfaced to the Subscribe caller, who has long since
// returned. The pump exits when the subscription terminates (its error
// channel closes).
func (s *Subscriber) Subscribe(ctx context.Context, query EventQuery, onLog func(types.Log), onError func(error)) (string, error) {
	ethcli, err := s.connect()
	if err != nil {
		return "", err
	}
	q := ethereum.FilterQuery{
		Addresses: []common.Address{query.Contract},
		Topics:    query.Topics,
	}
	logCh := make(chan types.Log, 128)
	sub, err := ethcli.SubscribeFilterLogs(ctx, q, logCh)
	if err != nil {
		return "", fmt.Errorf("subscription on %s failed: %w", s.nodeName, err)
	}
	id := uuid.NewString()
	s.register(id, sub)

	go func() {
		defer s.deregister(id)
		for {
			select {
			case err, open := <-sub.Err():
				if !open {
					return
				}
				if err != nil && onError != nil {
					onError(err)
				}
			case l := <-logCh:
				if onLog != nil {
					onLog(l)
				}
			}
		}
	}()
	return id, nil
}

// ClearSubscriptions unsubscribes everything this transport tracks. It
// reports an error when there is nothing to clear so callers that care can
// tell the difference; callers that don't are free to ignore it.
func (s *Subscriber) ClearSubscriptions() error {
	s.mu.Lock()
	subs := s.subs
	s.subs = map[string]event.Subscription{}
	s.mu.Unlock()

	if len(subs) == 0 {
		return fmt.Errorf("no active subscriptions on %s", s.nodeName)
	}
	for id, sub := range subs {
		sub.Unsubscribe()
		logrus.WithFields(logrus.Fields{
			"node":         s.nodeName,
			"subscription": id,
		}).Debug("subscription cleared")
	}
	return nil
}

// ActiveSubscriptions returns how many subscriptions are currently tracked.
func (s *Subscriber) ActiveSubscriptions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
