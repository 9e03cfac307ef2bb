package contract

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/sirupsen/logrus"

	"github.com/tranvictor/ethproxy/config"
	"github.com/tranvictor/ethproxy/transport"
)

// Event is one decoded log delivered to a subscription handler. Fields
// holds every decodable input keyed by its ABI name, indexed and
// non-indexed alike; Raw is the underlying log.
type Event struct {
	Name   string
	Fields map[string]interface{}
	Raw    types.Log
}

// Handler consumes decoded events. A returned error is logged and
// swallowed; it never tears the subscription down.
type Handler func(Event) error

// Subscribe registers handler for the named event on the bound contract.
// Each filter narrows the matching indexed parameter in declaration
// order; nil leaves that position as a wildcard. The return reports
// whether the registration took effect: every failure path logs its cause
// and returns false rather than erroring.
func (p *Proxy) Subscribe(ctx context.Context, eventName string, handler Handler, filters ...interface{}) bool {
	if p.reg.SubscriptionTransport == nil {
		logrus.WithField("event", eventName).
			Warn("can't subscribe, configuration has no subscription transport")
		return false
	}
	ev, found := p.desc.ABI.Events[eventName]
	if !found {
		logrus.WithFields(logrus.Fields{
			"contract": p.describe(),
			"event":    eventName,
		}).Warn("can't subscribe to unknown event")
		return false
	}
	addr, err := p.boundAddress()
	if err != nil {
		logrus.WithField("event", eventName).WithError(err).
			Warn("can't subscribe on unbound proxy")
		return false
	}

	topics, err := eventTopics(ev, filters)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"contract": p.describe(),
			"event":    eventName,
		}).WithError(err).Warn("couldn't build event filter")
		return false
	}

	query := transport.EventQuery{Contract: addr, Topics: topics}
	onLog := func(l types.Log) {
		event, err := p.decodeLog(ev, l)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"contract": p.describe(),
				"event":    eventName,
				"tx":       l.TxHash.Hex(),
			}).WithError(err).Warn("dropping undecodable log")
			return
		}
		if err := handler(event); err != nil {
			logrus.WithFields(logrus.Fields{
				"contract": p.describe(),
				"event":    eventName,
				"tx":       l.TxHash.Hex(),
			}).WithError(err).Warn("event handler returned an error")
		}
	}
	onError := func(err error) {
		logrus.WithFields(logrus.Fields{
			"contract": p.describe(),
			"event":    eventName,
		}).WithError(err).Warn("subscription delivery error")
	}

	id, err := p.reg.SubscriptionTransport.Subscribe(ctx, query, onLog, onError)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"contract": p.describe(),
			"event":    eventName,
		}).WithError(err).Warn("subscription registration failed")
		return false
	}
	logrus.WithFields(logrus.Fields{
		"contract":     p.describe(),
		"event":        eventName,
		"subscription": id,
	}).Debug("subscribed")
	return true
}

// Unsubscribe drops every subscription on the proxy's transport. It always
// reports true; a failing teardown is logged and treated as done.
func (p *Proxy) Unsubscribe() bool {
	return clearSubscriptions(p.reg.SubscriptionTransport)
}

// Unsubscribe drops every subscription opened through the process-wide
// configuration. Like the proxy-level variant it always reports true.
func Unsubscribe() bool {
	reg, ok := config.Current()
	if !ok {
		return true
	}
	return clearSubscriptions(reg.SubscriptionTransport)
}

func clearSubscriptions(sub transport.SubscriptionTransport) bool {
	if sub == nil {
		return true
	}
	if err := sub.ClearSubscriptions(); err != nil {
		logrus.WithError(err).Warn("couldn't clear subscriptions")
	}
	return true
}

// eventTopics builds the filter topics: position 0 pins the event
// signature, later positions come from the caller's indexed filters.
func eventTopics(ev abi.Event, filters []interface{}) ([][]common.Hash, error) {
	topics := [][]common.Hash{{ev.ID}}
	indexed := indexedArguments(ev)
	for i, filter := range filters {
		if i >= len(indexed) {
			logrus.WithFields(logrus.Fields{
				"event":   ev.Name,
				"indexed": len(indexed),
				"given":   len(filters),
			}).Warn("ignoring filters beyond the event's indexed parameters")
			break
		}
		if filter == nil {
			topics = append(topics, nil)
			continue
		}
		made, err := abi.MakeTopics([]interface{}{filter})
		if err != nil {
			return nil, err
		}
		topics = append(topics, made[0])
	}
	return topics, nil
}

func indexedArguments(ev abi.Event) abi.Arguments {
	indexed := abi.Arguments{}
	for _, input := range ev.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	return indexed
}

func (p *Proxy) decodeLog(ev abi.Event, l types.Log) (Event, error) {
	fields := map[string]interface{}{}
	if len(l.Data) > 0 {
		if err := p.desc.ABI.UnpackIntoMap(fields, ev.Name, l.Data); err != nil {
			return Event{}, err
		}
	}
	indexed := indexedArguments(ev)
	if len(indexed) > 0 && len(l.Topics) > 1 {
		if err := abi.ParseTopicsIntoMap(fields, indexed, l.Topics[1:]); err != nil {
			return Event{}, err
		}
	}
	return Event{Name: ev.Name, Fields: fields, Raw: l}, nil
}
