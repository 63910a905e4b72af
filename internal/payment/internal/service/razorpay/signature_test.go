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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignature(t *testing.T) {
	t.Parallel()
	// 预先算好的已知向量
	got := ComputeSignature("s", "O1", "P1")
	assert.Equal(t, "d21cc795bcee40ad1b3d574510d482a0ea6938974fcdcbbdc720aec1a62a9468", got)
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()
	secret := "test_secret"
	sig := ComputeSignature(secret, "order_abc", "pay_xyz")

	assert.True(t, VerifySignature(secret, "order_abc", "pay_xyz", sig))
	// 篡改一个字符即失败
	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	assert.False(t, VerifySignature(secret, "order_abc", "pay_xyz", string(tampered)))
	// 密钥不同即失败
	assert.False(t, VerifySignature("other_secret", "order_abc", "pay_xyz", sig))
	// 空签名失败
	assert.False(t, VerifySignature(secret, "order_abc", "pay_xyz", ""))
}
