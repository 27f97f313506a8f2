package line

import (
	lineclient "communityhub/clients/line"
	"communityhub/config"
	"communityhub/services"
)

// LineUseCase owns the two halves of the LINE integration: dispatching
// verified webhook events into the contact/group/message stores, and fanning
// broadcast notifications out to the configured recipients.
type LineUseCase struct {
	contactsService services.LineContactsService
	groupsService   services.LineGroupsService
	messagesService services.InboundMessagesService
	pushSender      lineclient.PushSender
	lineConfig      config.LineConfig
}

func NewLineUseCase(
	contactsService services.LineContactsService,
	groupsService services.LineGroupsService,
	messagesService services.InboundMessagesService,
	pushSender lineclient.PushSender,
	lineConfig config.LineConfig,
) *LineUseCase {
	return &LineUseCase{
		contactsService: contactsService,
		groupsService:   groupsService,
		messagesService: messagesService,
		pushSender:      pushSender,
		lineConfig:      lineConfig,
	}
}
