package notifier

import (
	"fmt"

	"github.com/mahadtoukaleh/CodeClarity/internal/domain"
)

var (
	// ErrUnknownTemplate неизвестный тип шаблона
	ErrUnknownTemplate = fmt.Errorf("%w: unknown template kind", domain.ErrNotification)

	// ErrPayloadMismatch данные не подходят к шаблону
	ErrPayloadMismatch = fmt.Errorf("%w: payload does not match template kind", domain.ErrNotification)

	// ErrRender ошибка рендеринга шаблона
	ErrRender = fmt.Errorf("%w: failed to render template", domain.ErrNotification)

	// ErrDelivery транспорт не смог доставить письмо
	ErrDelivery = fmt.Errorf("%w: delivery failed", domain.ErrNotification)
)
