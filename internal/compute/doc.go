// Package compute содержит реализации числовых операций API.
//
// # Обзор
//
// Каждая операция получает сырое JSON-значение единственного ключа
// тела запроса, валидирует его и возвращает строку для поля data
// конверта. Валидация выполняется строго до вычисления: на
// некорректном входе ядро не запускается и частичных результатов
// не бывает.
//
// # Интерфейс Operation
//
// Все операции реализуют интерфейс Operation:
//
//	type Operation interface {
//	    Kind() domain.OpKind
//	    Execute(ctx context.Context, raw json.RawMessage) (string, error)
//	}
//
// Ошибки возвращаются как *domain.Error с кодом из закрытого
// перечисления; диспетчер отображает код в HTTP-статус.
//
// # Registry
//
// Registry — реестр операций по виду:
//
//	registry := compute.DefaultRegistry() // fibonacci, prime, hcf, lcm
//	registry.Register(answer.NewOperation(provider)) // AI
//	op, err := registry.Get(domain.OpLCM)
//
// # Операции
//
// ## Fibonacci (fibonacci.go)
//
// Вход — неотрицательное целое n ≤ 100. Результат — первые n+1
// чисел последовательности:
//
//	{"fibonacci": 10} → "0,1,1,2,3,5,8,13,21,34,55"
//
// Значения произвольной точности (math/big): fib(93) и дальше
// не помещаются в int64.
//
// ## Prime (primes.go)
//
// Вход — непустой массив целых (модуль ≤ 1e9, до 500 элементов).
// Результат — простые элементы в исходном порядке:
//
//	{"prime": [1,2,3,4,5,6,7,8,9,10]} → "2,3,5,7"
//
// Простота проверяется пробным делением до квадратного корня.
//
// ## HCF (hcf.go)
//
// Вход — непустой массив целых (модуль ≤ 1e9, до 500 элементов).
// Результат — наибольший общий делитель (алгоритм Евклида,
// свёртка слева):
//
//	{"hcf": [12, 18]} → "6"
//
// ## LCM (lcm.go)
//
// Вход — непустой массив целых (модуль ≤ 1e9, до 200 элементов).
// Результат — наименьшее общее кратное (попарная свёртка слева):
//
//	{"lcm": [4, 6]} → "12"
//
// Аккумулятор сверяется с безопасной границей после каждого шага;
// превышение прерывает свёртку с кодом lcm_overflow. Ноль в любом
// элементе даёт 0.
//
// # Числовые значения
//
// JSON-числа декодируются как json.Number и принимаются, только
// если они целые: 10 и 10.0 эквивалентны, 10.5 — ошибка валидации.
// Для элементов массивов действует граница SafeBound (1e9 по
// модулю) — она удерживает промежуточные произведения свёртки НОК
// в пределах int64.
//
// # Файлы пакета
//
//   - operation.go — интерфейс Operation, Registry
//   - numbers.go   — декодирование и проверка целых, форматирование
//   - fibonacci.go — FibonacciOp, FibonacciSequence
//   - primes.go    — PrimeOp, IsPrime, FilterPrimes
//   - hcf.go       — HCFOp, GCD, HCF
//   - lcm.go       — LCMOp, LCMPair, LCM
package compute
