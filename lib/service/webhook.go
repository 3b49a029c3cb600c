package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/scrollverse/metalbridge/common"
)

func (svc *BridgeService) StartWebhookSubscription(ctx context.Context, url string) {

	svc.Logger.Infof("Starting webhook subscription with webhook url %s", url)
	events := make(chan common.RegistryEvent)
	subID, err := svc.EventPubSub.Subscribe(common.EventTopicAll, events)
	if err != nil {
		svc.Logger.Error(err)
		return
	}
	for {
		select {
		case <-ctx.Done():
			svc.EventPubSub.Unsubscribe(subID, common.EventTopicAll)
			return
		case event := <-events:
			svc.postToWebhook(event, url)
		}
	}
}

func (svc *BridgeService) postToWebhook(event common.RegistryEvent, url string) {

	payload := new(bytes.Buffer)
	err := json.NewEncoder(payload).Encode(event)
	if err != nil {
		svc.Logger.Error(err)
		return
	}

	resp, err := http.Post(url, "application/json", payload)
	if err != nil {
		svc.Logger.Error(err)
		return
	}
	if resp.StatusCode != http.StatusOK {
		msg, err := io.ReadAll(resp.Body)
		if err != nil {
			svc.Logger.Error(err)
		}
		svc.Logger.Errorf("Webhook status code was %d, body: %s", resp.StatusCode, msg)
	}
}
