// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// ComputeSignature 计算网关回传签名的期望值
// 消息体是 "<网关订单号>|<网关支付号>", HMAC-SHA256 后转十六进制小写
func ComputeSignature(secret, gatewayOrderID, gatewayPaymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(fmt.Sprintf("%s|%s", gatewayOrderID, gatewayPaymentID)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature 常数时间比较, 避免计时侧信道
func VerifySignature(secret, gatewayOrderID, gatewayPaymentID, signature string) bool {
	expected := ComputeSignature(secret, gatewayOrderID, gatewayPaymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
