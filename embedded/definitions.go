// Copyright 2024 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package embedded

const commonDefinition = `[
	{"type":"function","name":"Update","inputs":[]},
	{"type":"function","name":"CollectReward","inputs":[]},
	{"type":"function","name":"DepositQsr","inputs":[]},
	{"type":"function","name":"WithdrawQsr","inputs":[]},
	{"type":"function","name":"Donate","inputs":[]},
	{"type":"function","name":"VoteByName","inputs":[{"name":"id","type":"hash"},{"name":"name","type":"string"},{"name":"vote","type":"uint8"}]},
	{"type":"function","name":"VoteByProdAddress","inputs":[{"name":"id","type":"hash"},{"name":"vote","type":"uint8"}]},
	{"type":"variable","name":"lastUpdate","inputs":[{"name":"height","type":"uint64"}]},
	{"type":"variable","name":"lastEpochUpdate","inputs":[{"name":"lastEpoch","type":"int64"}]},
	{"type":"variable","name":"rewardDeposit","inputs":[{"name":"znn","type":"uint256"},{"name":"qsr","type":"uint256"}]},
	{"type":"variable","name":"rewardDepositHistory","inputs":[{"name":"znn","type":"uint256"},{"name":"qsr","type":"uint256"}]},
	{"type":"variable","name":"qsrDeposit","inputs":[{"name":"qsr","type":"uint256"}]},
	{"type":"variable","name":"pillarVote","inputs":[{"name":"id","type":"hash"},{"name":"name","type":"string"},{"name":"vote","type":"uint8"}]},
	{"type":"variable","name":"votableHash","inputs":[{"name":"exists","type":"bool"}]},
	{"type":"variable","name":"timeChallengeInfo","inputs":[{"name":"methodName","type":"string"},{"name":"paramsHash","type":"hash"},{"name":"challengeStartHeight","type":"uint64"}]},
	{"type":"variable","name":"securityInfo","inputs":[{"name":"guardians","type":"address[]"},{"name":"guardiansVotes","type":"address[]"},{"name":"administratorDelay","type":"uint64"},{"name":"softDelay","type":"uint64"}]}
]`

const tokenDefinition = `[
	{"type":"function","name":"IssueToken","inputs":[{"name":"tokenName","type":"string"},{"name":"tokenSymbol","type":"string"},{"name":"tokenDomain","type":"string"},{"name":"totalSupply","type":"uint256"},{"name":"maxSupply","type":"uint256"},{"name":"decimals","type":"uint8"},{"name":"isMintable","type":"bool"},{"name":"isBurnable","type":"bool"},{"name":"isUtility","type":"bool"}]},
	{"type":"function","name":"Mint","inputs":[{"name":"tokenStandard","type":"tokenStandard"},{"name":"amount","type":"uint256"},{"name":"receiveAddress","type":"address"}]},
	{"type":"function","name":"Burn","inputs":[]},
	{"type":"function","name":"UpdateToken","inputs":[{"name":"tokenStandard","type":"tokenStandard"},{"name":"owner","type":"address"},{"name":"isMintable","type":"bool"},{"name":"isBurnable","type":"bool"}]},
	{"type":"variable","name":"tokenInfo","inputs":[{"name":"owner","type":"address"},{"name":"tokenName","type":"string"},{"name":"tokenSymbol","type":"string"},{"name":"tokenDomain","type":"string"},{"name":"totalSupply","type":"uint256"},{"name":"maxSupply","type":"uint256"},{"name":"decimals","type":"uint8"},{"name":"isMintable","type":"bool"},{"name":"isBurnable","type":"bool"},{"name":"isUtility","type":"bool"}]}
]`

const plasmaDefinition = `[
	{"type":"function","name":"Fuse","inputs":[{"name":"address","type":"address"}]},
	{"type":"function","name":"CancelFuse","inputs":[{"name":"id","type":"hash"}]},
	{"type":"variable","name":"fusionInfo","inputs":[{"name":"amount","type":"uint256"},{"name":"expirationHeight","type":"uint64"},{"name":"beneficiary","type":"address"}]},
	{"type":"variable","name":"fusedAmount","inputs":[{"name":"amount","type":"uint256"}]}
]`

const pillarDefinition = `[
	{"type":"function","name":"Update","inputs":[]},
	{"type":"function","name":"Register","inputs":[{"name":"name","type":"string"},{"name":"producerAddress","type":"address"},{"name":"rewardAddress","type":"address"},{"name":"giveBlockRewardPercentage","type":"uint8"},{"name":"giveDelegateRewardPercentage","type":"uint8"}]},
	{"type":"function","name":"RegisterLegacy","inputs":[{"name":"name","type":"string"},{"name":"producerAddress","type":"address"},{"name":"rewardAddress","type":"address"},{"name":"giveBlockRewardPercentage","type":"uint8"},{"name":"giveDelegateRewardPercentage","type":"uint8"},{"name":"publicKey","type":"string"},{"name":"signature","type":"string"}]},
	{"type":"function","name":"UpdatePillar","inputs":[{"name":"name","type":"string"},{"name":"producerAddress","type":"address"},{"name":"rewardAddress","type":"address"},{"name":"giveBlockRewardPercentage","type":"uint8"},{"name":"giveDelegateRewardPercentage","type":"uint8"}]},
	{"type":"function","name":"DepositQsr","inputs":[]},
	{"type":"function","name":"WithdrawQsr","inputs":[]},
	{"type":"function","name":"Revoke","inputs":[{"name":"name","type":"string"}]},
	{"type":"function","name":"Delegate","inputs":[{"name":"name","type":"string"}]},
	{"type":"function","name":"Undelegate","inputs":[]},
	{"type":"function","name":"CollectReward","inputs":[]},
	{"type":"variable","name":"pillarInfo","inputs":[{"name":"name","type":"string"},{"name":"blockProducingAddress","type":"address"},{"name":"rewardWithdrawAddress","type":"address"},{"name":"stakeAddress","type":"address"},{"name":"amount","type":"uint256"},{"name":"registrationTime","type":"int64"},{"name":"revokeTime","type":"int64"},{"name":"giveBlockRewardPercentage","type":"uint8"},{"name":"giveDelegateRewardPercentage","type":"uint8"},{"name":"pillarType","type":"uint8"}]},
	{"type":"variable","name":"producingPillarName","inputs":[{"name":"name","type":"string"}]},
	{"type":"variable","name":"LegacyPillarEntry","inputs":[{"name":"pillarCount","type":"uint8"}]},
	{"type":"variable","name":"delegationInfo","inputs":[{"name":"name","type":"string"}]},
	{"type":"variable","name":"pillarEpochHistory","inputs":[{"name":"giveBlockRewardPercentage","type":"uint8"},{"name":"giveDelegateRewardPercentage","type":"uint8"},{"name":"producedBlockNum","type":"int32"},{"name":"expectedBlockNum","type":"int32"},{"name":"weight","type":"uint256"}]}
]`

const sentinelDefinition = `[
	{"type":"function","name":"DepositQsr","inputs":[]},
	{"type":"function","name":"WithdrawQsr","inputs":[]},
	{"type":"function","name":"Register","inputs":[]},
	{"type":"function","name":"Revoke","inputs":[]},
	{"type":"function","name":"Update","inputs":[]},
	{"type":"function","name":"CollectReward","inputs":[]},
	{"type":"variable","name":"sentinelInfo","inputs":[{"name":"owner","type":"address"},{"name":"registrationTimestamp","type":"int64"},{"name":"revokeTimestamp","type":"int64"},{"name":"znnAmount","type":"uint256"},{"name":"qsrAmount","type":"uint256"}]}
]`

const stakeDefinition = `[
	{"type":"function","name":"Stake","inputs":[{"name":"durationInSec","type":"int64"}]},
	{"type":"function","name":"Cancel","inputs":[{"name":"id","type":"hash"}]},
	{"type":"function","name":"CollectReward","inputs":[]},
	{"type":"function","name":"Update","inputs":[]},
	{"type":"variable","name":"stakeInfo","inputs":[{"name":"amount","type":"uint256"},{"name":"weightedAmount","type":"uint256"},{"name":"startTime","type":"int64"},{"name":"revokeTime","type":"int64"},{"name":"expirationTime","type":"int64"}]}
]`

const swapDefinition = `[
	{"type":"function","name":"RetrieveAssets","inputs":[{"name":"publicKey","type":"string"},{"name":"signature","type":"string"}]},
	{"type":"variable","name":"swapEntry","inputs":[{"name":"znn","type":"uint256"},{"name":"qsr","type":"uint256"}]}
]`

const sporkDefinition = `[
	{"type":"function","name":"CreateSpork","inputs":[{"name":"name","type":"string"},{"name":"description","type":"string"}]},
	{"type":"function","name":"ActivateSpork","inputs":[{"name":"id","type":"hash"}]},
	{"type":"variable","name":"sporkInfo","inputs":[{"name":"id","type":"hash"},{"name":"name","type":"string"},{"name":"description","type":"string"},{"name":"activated","type":"bool"},{"name":"enforcementHeight","type":"uint64"}]}
]`

const htlcDefinition = `[
	{"type":"function","name":"Create","inputs":[{"name":"hashLocked","type":"address"},{"name":"expirationTime","type":"int64"},{"name":"hashType","type":"uint8"},{"name":"keyMaxSize","type":"uint8"},{"name":"hashLock","type":"bytes"}]},
	{"type":"function","name":"Reclaim","inputs":[{"name":"id","type":"hash"}]},
	{"type":"function","name":"Unlock","inputs":[{"name":"id","type":"hash"},{"name":"preimage","type":"bytes"}]},
	{"type":"function","name":"DenyProxyUnlock","inputs":[]},
	{"type":"function","name":"AllowProxyUnlock","inputs":[]},
	{"type":"variable","name":"htlcInfo","inputs":[{"name":"timeLocked","type":"address"},{"name":"hashLocked","type":"address"},{"name":"tokenStandard","type":"tokenStandard"},{"name":"amount","type":"uint256"},{"name":"expirationTime","type":"int64"},{"name":"hashType","type":"uint8"},{"name":"keyMaxSize","type":"uint8"},{"name":"hashLock","type":"bytes"}]},
	{"type":"variable","name":"htlcProxyUnlockInfo","inputs":[{"name":"allowed","type":"bool"}]}
]`

const acceleratorDefinition = `[
	{"type":"function","name":"Update","inputs":[]},
	{"type":"function","name":"Donate","inputs":[]},
	{"type":"function","name":"CreateProject","inputs":[{"name":"name","type":"string"},{"name":"description","type":"string"},{"name":"url","type":"string"},{"name":"znnFundsNeeded","type":"uint256"},{"name":"qsrFundsNeeded","type":"uint256"}]},
	{"type":"function","name":"AddPhase","inputs":[{"name":"id","type":"hash"},{"name":"name","type":"string"},{"name":"description","type":"string"},{"name":"url","type":"string"},{"name":"znnFundsNeeded","type":"uint256"},{"name":"qsrFundsNeeded","type":"uint256"}]},
	{"type":"function","name":"UpdatePhase","inputs":[{"name":"id","type":"hash"},{"name":"name","type":"string"},{"name":"description","type":"string"},{"name":"url","type":"string"},{"name":"znnFundsNeeded","type":"uint256"},{"name":"qsrFundsNeeded","type":"uint256"}]},
	{"type":"function","name":"VoteByName","inputs":[{"name":"id","type":"hash"},{"name":"name","type":"string"},{"name":"vote","type":"uint8"}]},
	{"type":"function","name":"VoteByProdAddress","inputs":[{"name":"id","type":"hash"},{"name":"vote","type":"uint8"}]},
	{"type":"variable","name":"project","inputs":[{"name":"id","type":"hash"},{"name":"owner","type":"address"},{"name":"name","type":"string"},{"name":"description","type":"string"},{"name":"url","type":"string"},{"name":"znnFundsNeeded","type":"uint256"},{"name":"qsrFundsNeeded","type":"uint256"},{"name":"creationTimestamp","type":"int64"},{"name":"lastUpdateTimestamp","type":"int64"},{"name":"status","type":"uint8"},{"name":"phaseIds","type":"hash[]"}]},
	{"type":"variable","name":"phase","inputs":[{"name":"id","type":"hash"},{"name":"projectId","type":"hash"},{"name":"name","type":"string"},{"name":"description","type":"string"},{"name":"url","type":"string"},{"name":"znnFundsNeeded","type":"uint256"},{"name":"qsrFundsNeeded","type":"uint256"},{"name":"creationTimestamp","type":"int64"},{"name":"acceptedTimestamp","type":"int64"},{"name":"status","type":"uint8"}]}
]`

const liquidityDefinition = `[
	{"type":"function","name":"Update","inputs":[]},
	{"type":"function","name":"Donate","inputs":[]},
	{"type":"function","name":"Fund","inputs":[{"name":"znnReward","type":"uint256"},{"name":"qsrReward","type":"uint256"}]},
	{"type":"function","name":"BurnZnn","inputs":[{"name":"burnAmount","type":"uint256"}]},
	{"type":"function","name":"SetTokenTuple","inputs":[{"name":"tokenStandards","type":"string[]"},{"name":"znnPercentages","type":"uint32[]"},{"name":"qsrPercentages","type":"uint32[]"},{"name":"minAmounts","type":"uint256[]"}]},
	{"type":"function","name":"NominateGuardians","inputs":[{"name":"guardians","type":"address[]"}]},
	{"type":"function","name":"ProposeAdministrator","inputs":[{"name":"address","type":"address"}]},
	{"type":"function","name":"Emergency","inputs":[]},
	{"type":"function","name":"SetIsHalted","inputs":[{"name":"isHalted","type":"bool"}]},
	{"type":"function","name":"LiquidityStake","inputs":[{"name":"durationInSec","type":"int64"}]},
	{"type":"function","name":"CancelLiquidityStake","inputs":[{"name":"id","type":"hash"}]},
	{"type":"function","name":"UnlockLiquidityStakeEntries","inputs":[]},
	{"type":"function","name":"SetAdditionalReward","inputs":[{"name":"znnReward","type":"uint256"},{"name":"qsrReward","type":"uint256"}]},
	{"type":"function","name":"CollectReward","inputs":[]},
	{"type":"function","name":"ChangeAdministrator","inputs":[{"name":"administrator","type":"address"}]},
	{"type":"variable","name":"liquidityInfo","inputs":[{"name":"administrator","type":"address"},{"name":"isHalted","type":"bool"},{"name":"znnReward","type":"uint256"},{"name":"qsrReward","type":"uint256"},{"name":"tokenTuples","type":"bytes[]"}]},
	{"type":"variable","name":"tokenTuple","inputs":[{"name":"tokenStandard","type":"string"},{"name":"znnPercentage","type":"uint32"},{"name":"qsrPercentage","type":"uint32"},{"name":"minAmount","type":"uint256"}]},
	{"type":"variable","name":"liquidityStakeEntry","inputs":[{"name":"amount","type":"uint256"},{"name":"tokenStandard","type":"tokenStandard"},{"name":"weightedAmount","type":"uint256"},{"name":"startTime","type":"int64"},{"name":"revokeTime","type":"int64"},{"name":"expirationTime","type":"int64"}]},
	{"type":"variable","name":"securityInfo","inputs":[{"name":"guardians","type":"address[]"},{"name":"guardiansVotes","type":"address[]"},{"name":"administratorDelay","type":"uint64"},{"name":"softDelay","type":"uint64"}]}
]`

