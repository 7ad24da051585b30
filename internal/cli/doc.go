// Package cli реализует инструмент командной строки Numerix.
//
// # Обзор
//
// CLI — клиентская утилита для обращения к Numerix API.
// Работает через HTTP, не импортирует внутренние пакеты сервера.
//
// # Ключевые компоненты
//
// ## Client
//
// HTTP-клиент для Numerix API. Инкапсулирует формирование тела
// с единственным ключом операции, разбор конверта ответа и
// превращение конверта ошибки в error вида "код: сообщение".
//
//	client := cli.NewClient("http://localhost:8080")
//	data, err := client.Compute("lcm", []int64{4, 6})
//
// ## Output
//
// Форматирование вывода. Результат операции печатается голым
// значением в stdout (или JSON-объектом с флагом --json), сообщения
// (Success/Error) уходят в stderr. Это позволяет использовать pipe:
// numerix fib 10 --json | jq .
//
// ## Commands
//
// Cobra-команды по одной на операцию API:
//   - fib N       — последовательность Фибоначчи
//   - prime N...  — фильтрация простых
//   - hcf N...    — наибольший общий делитель
//   - lcm N...    — наименьшее общее кратное
//   - ask TEXT... — вопрос провайдеру коротких ответов
//   - health      — проверка живости сервера
//
// Каждая команда создаётся фабричной функцией (NewFibCmd и т.д.),
// принимающей clientFn и outputFn — замыкания для ленивого создания
// Client и Output после парсинга PersistentFlags.
package cli
