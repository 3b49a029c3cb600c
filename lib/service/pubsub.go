package service

import (
	"crypto/rand"
	"encoding/hex"
	"sync"

	"github.com/scrollverse/metalbridge/common"
)

type Pubsub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan common.RegistryEvent
}

func NewPubsub() *Pubsub {
	ps := &Pubsub{}
	ps.subs = make(map[string]map[string]chan common.RegistryEvent)
	return ps
}

func (ps *Pubsub) Subscribe(topic string, ch chan common.RegistryEvent) (subId string, err error) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		ps.subs[topic] = make(map[string]chan common.RegistryEvent)
	}
	idBytes := make([]byte, 16)
	if _, err = rand.Read(idBytes); err != nil {
		return "", err
	}
	subId = hex.EncodeToString(idBytes)
	ps.subs[topic][subId] = ch
	return subId, nil
}

func (ps *Pubsub) Unsubscribe(id string, topic string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		return
	}
	if ps.subs[topic][id] == nil {
		return
	}
	close(ps.subs[topic][id])
	delete(ps.subs[topic], id)
}

func (ps *Pubsub) Publish(topic string, msg common.RegistryEvent) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.subs[topic] == nil {
		return
	}

	for _, ch := range ps.subs[topic] {
		ch <- msg
	}
}
