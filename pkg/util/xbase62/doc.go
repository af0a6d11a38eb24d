// Package xbase62 提供任意长度字节序列与 base62 字符串之间的双向转换。
//
// # 编码规则
//
// 输入字节按大端序解释为一个非负大整数，反复除以 62 取余得到各位数字，
// 最高位在前。字母表固定为：
//
//	0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz
//
// 数字取值：'0'..'9' = 0..9，'A'..'Z' = 10..35，'a'..'z' = 36..61。
// 注意 math/big 的 Text(62) 使用小写在前的字母表，与此不同，因此不能直接替代。
//
// # 填充
//
// [EncodeWithPadding] 在左侧补 '0' 直到达到最小长度；自然长度已经足够时原样返回，
// 永远不会截断。
//
// # 解码
//
// [Decode] 严格区分大小写，任何字母表外的字符都返回 [ErrInvalidArgument]。
// 结果是最短的大端序表示（不含符号字节，不含多余的前导零字节），
// 因此原始数据中的前导零字节需要由知道期望长度的调用方补回。
//
//	b, err := xbase62.Decode("24rUCafWbTglyvWlQEuaxKqqiuY")
//	if err != nil {
//	    return err
//	}
//	s := xbase62.EncodeWithPadding(b, 29) // "0024rUCafWbTglyvWlQEuaxKqqiuY"
//
// 所有函数都是纯函数，可被多个 goroutine 并发调用。
package xbase62
