// Package answer реализует операцию AI: вопрос внешнему провайдеру
// коротких ответов.
//
// Включает:
//   - answer.go    — интерфейс Provider, санитизация, извлечение токена
//   - operation.go — операция AI (валидация вопроса, маппинг ошибок)
//   - wolfram.go   — провайдер Wolfram|Alpha Short Answers (по умолчанию)
//   - gemini.go    — провайдер Google GenAI
//
// Контракт единый для всех провайдеров: один синхронный вызов без
// повторов, ответом считается первый словесный токен текста. Провайдер
// выбирается конфигурацией при старте процесса.
package answer
