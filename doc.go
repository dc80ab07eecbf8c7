// Package bitmask 把任意定长整数(或布尔值)当作位掩码容器使用。
//
// 提供四种操作:
//   - Mask   设置位    target |= bits
//   - Flip   翻转位    target ^= bits
//   - Unmask 清除位    target &^= bits
//   - Masked 判断 bits 是否全部已设置  target&bits == bits
//
// 泛型函数覆盖 8/16/32/64 位有符号与无符号整数,bool 另有 MaskBool 等同名函数。
// 需要方法调用形式时可使用 Flag8/Flag16/Flag32/Flag 与 Bool,它们都实现了 Maskable。
//
// 所有操作都不会失败,不分配内存,也不做并发保护。
package bitmask
