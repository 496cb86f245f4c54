package snowflake

import (
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// 节点号由数据中心号和机器号拼成，两段各占 5 位
const maxNodeSegment = 31

var (
	node *snowflake.Node
	once sync.Once

	errNotInitialized = errors.New("snowflake generator is not initialized")
)

func Init(machineID, dataCenterID int64) error {
	var initErr error

	once.Do(func() {
		if machineID < 0 || machineID > maxNodeSegment {
			initErr = fmt.Errorf("snowflake machine id %d out of range [0, %d]", machineID, maxNodeSegment)
			return
		}
		if dataCenterID < 0 || dataCenterID > maxNodeSegment {
			initErr = fmt.Errorf("snowflake data center id %d out of range [0, %d]", dataCenterID, maxNodeSegment)
			return
		}

		n, err := snowflake.NewNode(dataCenterID<<5 | machineID)
		if err != nil {
			initErr = fmt.Errorf("failed to create snowflake node: %w", err)
			return
		}
		node = n
	})

	return initErr
}

// NextID 生成用户 public_id 和消息 ID 用的全局唯一 ID
func NextID() (int64, error) {
	if node == nil {
		return 0, errNotInitialized
	}

	return node.Generate().Int64(), nil
}

// NextString NextID 的十进制字符串形式
func NextString() (string, error) {
	id, err := NextID()
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(id, 10), nil
}
